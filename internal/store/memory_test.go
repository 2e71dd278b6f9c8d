package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jacoba1100254352/Boggle/internal/game"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	sess := game.New(ctx, game.Config{})
	require.NoError(t, st.Save(ctx, sess))

	got, err := st.Get(ctx, sess.ID())
	require.NoError(t, err)
	assert.Same(t, sess, got)

	_, err = st.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
