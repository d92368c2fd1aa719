package usecase

// AuthorizeOwner はアクセス可否を決定する純粋関数です。
// 認証済みユーザーのIDがリソースの所有者IDと一致する場合のみ許可します。
// 暗黙の共有は存在せず、読み取り・更新・削除で同一の判定を使用します。
func AuthorizeOwner(subjectID, ownerID uint) bool {
	return subjectID == ownerID
}
