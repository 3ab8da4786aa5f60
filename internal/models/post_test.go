package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachmentList_Value(t *testing.T) {
	v, err := AttachmentList{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["https://cdn.example.com/a.jpg","https://cdn.example.com/b.jpg"]`, v)

	v, err = AttachmentList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestAttachmentList_Scan(t *testing.T) {
	var list AttachmentList
	require.NoError(t, list.Scan(`["https://cdn.example.com/a.jpg"]`))
	assert.Equal(t, AttachmentList{"https://cdn.example.com/a.jpg"}, list)

	var fromBytes AttachmentList
	require.NoError(t, fromBytes.Scan([]byte(`[]`)))
	assert.Empty(t, fromBytes)

	var fromNil AttachmentList
	require.NoError(t, fromNil.Scan(nil))
	assert.Nil(t, fromNil)

	var bad AttachmentList
	assert.Error(t, bad.Scan(42))
}

func TestUser_PublicOmitsPassword(t *testing.T) {
	u := &User{
		ID:        1,
		FirstName: "Alice",
		LastName:  "Adams",
		Email:     "alice@example.com",
		Password:  "$2a$10$somethinghashed",
		Image:     "https://cdn.example.com/alice.jpg",
	}

	pub := u.Public()
	assert.Equal(t, u.Email, pub.Email)
	assert.Equal(t, u.FirstName, pub.FirstName)

	// The projection has no password field at all; marshal and check.
	b, err := json.Marshal(pub)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "somethinghashed")
	assert.NotContains(t, string(b), "password")
}
