package usecase

import "testing"

// TestAuthorizeOwner は所有者一致の場合のみ許可されることを検証します。
func TestAuthorizeOwner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		subjectID uint
		ownerID   uint
		expected  bool
	}{
		{"owner matches", 1, 1, true},
		{"different user denied", 1, 2, false},
		{"reverse direction also denied", 2, 1, false},
		{"zero subject never matches a real owner", 0, 1, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := AuthorizeOwner(tt.subjectID, tt.ownerID); got != tt.expected {
				t.Errorf("AuthorizeOwner(%d, %d) = %v, expected %v",
					tt.subjectID, tt.ownerID, got, tt.expected)
			}
		})
	}
}
