package cache

import (
	"sync"
	"time"

	"github.com/DanRulev/uniprep.git/internal/models"
	"github.com/google/uuid"
)

// ReviewSession is the card a user is currently answering in the bot.
type ReviewSession struct {
	Card    models.Flashcard
	ShownAt time.Time
}

type Cache struct {
	mu       sync.Mutex
	sessions map[int64]ReviewSession
}

func NewCache() *Cache {
	return &Cache{
		sessions: make(map[int64]ReviewSession),
	}
}

func (c *Cache) SetSession(userID int64, session ReviewSession) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[userID] = session
}

func (c *Cache) Session(userID int64) (ReviewSession, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	session, exists := c.sessions[userID]
	return session, exists
}

// TakeSession returns the session and removes it, so an answer is only
// submitted once even if the button is pressed twice. A session showing a
// different card is left in place and reported as missing.
func (c *Cache) TakeSession(userID int64, cardID uuid.UUID) (ReviewSession, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	session, exists := c.sessions[userID]
	if !exists || session.Card.ID != cardID {
		return ReviewSession{}, false
	}
	delete(c.sessions, userID)
	return session, true
}

func (c *Cache) DeleteSession(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, userID)
}
