// Copyright (C) 2025 the premier-inn maintainers
// See root-dir/LICENSE for more information

package templates

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vbhvn08/premier-inn/internal/wizard"
)

const sessionCookie = "booking_session"

const sessionTTL = 24 * time.Hour

func NewSessionStore(newController func() *wizard.Controller) *SessionStore {
	return &SessionStore{
		controllers:   make(map[uuid.UUID]*wizard.Controller),
		newController: newController,
	}
}

// SessionStore binds one wizard controller to each visitor, keyed by a
// session cookie.
type SessionStore struct {
	mu            sync.Mutex
	controllers   map[uuid.UUID]*wizard.Controller
	newController func() *wizard.Controller
}

// Controller returns the visitor's wizard, creating the session cookie
// and the controller when absent.
func (s *SessionStore) Controller(c *gin.Context) *wizard.Controller {
	id := uuid.Nil
	if raw, err := c.Cookie(sessionCookie); err == nil {
		if parsed, err := uuid.Parse(raw); err == nil {
			id = parsed
		}
	}
	if id == uuid.Nil {
		id = uuid.New()
		c.SetCookie(sessionCookie, id.String(), int(sessionTTL.Seconds()), "/", "", false, true)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	ctrl, ok := s.controllers[id]
	if !ok {
		ctrl = s.newController()
		s.controllers[id] = ctrl
	}
	return ctrl
}
