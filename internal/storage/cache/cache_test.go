package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/DanRulev/uniprep.git/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_Sessions(t *testing.T) {
	t.Parallel()

	c := NewCache()
	session := ReviewSession{Card: models.Flashcard{ID: uuid.New()}, ShownAt: time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)}

	_, ok := c.Session(1)
	assert.False(t, ok)

	c.SetSession(1, session)
	got, ok := c.Session(1)
	require.True(t, ok)
	assert.Equal(t, session, got)

	_, ok = c.TakeSession(1, uuid.New())
	assert.False(t, ok)
	_, ok = c.Session(1)
	assert.True(t, ok)

	got, ok = c.TakeSession(1, session.Card.ID)
	require.True(t, ok)
	assert.Equal(t, session.Card.ID, got.Card.ID)

	_, ok = c.TakeSession(1, session.Card.ID)
	assert.False(t, ok)

	c.SetSession(2, session)
	c.DeleteSession(2)
	_, ok = c.Session(2)
	assert.False(t, ok)
}

func TestCache_TakeSessionOnce(t *testing.T) {
	t.Parallel()

	c := NewCache()
	cardID := uuid.New()
	c.SetSession(1, ReviewSession{Card: models.Flashcard{ID: cardID}})

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		taken int
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := c.TakeSession(1, cardID); ok {
				mu.Lock()
				taken++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, taken)
}
