package jwtmw

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// トークン検証の失敗種別。呼び出し側がログで区別できるよう分離していますが、
// クライアントへはすべて同一の401として返却されます。
var (
	// ErrTokenMalformed はトークンの構造やエンコーディングが不正な場合に返されます。
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrTokenInvalidSignature は署名検証に失敗した場合に返されます。
	ErrTokenInvalidSignature = errors.New("token signature is invalid")

	// ErrTokenExpired はトークンの有効期限が切れている場合に返されます。
	// 有効期限ちょうどの時刻も期限切れとして扱います。
	ErrTokenExpired = errors.New("token has expired")
)

// Claims は検証済みトークンから取り出したアイデンティティ情報です。
type Claims struct {
	UserID uint
	Email  string
}

// Verifier はJWTトークンの署名と有効期限を検証します。
// 署名シークレットは構築時に注入され、リクエストごとに環境変数を
// 読むことはしません。
type Verifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewVerifier は指定されたシークレットでVerifierを生成します。
// HS256のみを許可し、expクレームを必須とします。追加のParserOptionは
// 主にテストで時刻を固定するために使用します。
func NewVerifier(secret string, opts ...jwt.ParserOption) *Verifier {
	parserOpts := append([]jwt.ParserOption{
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithExpirationRequired(),
	}, opts...)
	return &Verifier{
		secret: []byte(secret),
		parser: jwt.NewParser(parserOpts...),
	}
}

// Verify はトークンを検証し、埋め込まれたクレームを返します。
// 署名検証が通るまでいかなるクレームも信用しません。失敗時は
// ErrTokenMalformed・ErrTokenInvalidSignature・ErrTokenExpiredの
// いずれかを返します。
func (v *Verifier) Verify(tokenStr string) (Claims, error) {
	token, err := v.parser.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrTokenInvalidSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrTokenExpired
		default:
			// 必須クレーム欠落などの残りの検証エラーは構造不正として扱う
			return Claims{}, ErrTokenMalformed
		}
	}
	if !token.Valid {
		return Claims{}, ErrTokenInvalidSignature
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrTokenMalformed
	}

	// JWTの数値はfloat64としてデコードされる
	sub, ok := mapClaims["sub"].(float64)
	if !ok {
		return Claims{}, ErrTokenMalformed
	}

	claims := Claims{UserID: uint(sub)}
	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}

	return claims, nil
}
