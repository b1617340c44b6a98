package httpserver

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	sessionName      = "mamahiam_session"
	sessionKeyCartID = "cart_id"
	ctxKeyCartID     = "cartID"
)

// sessionMiddleware pins a stable cart id to the browser session cookie. A
// failed cookie decode falls through to a fresh session; the shopper just
// gets a new empty cart.
func sessionMiddleware(store sessions.Store, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := store.Get(c.Request, sessionName)
		if err != nil {
			logger.Printf("session: decode cookie: %v", err)
		}
		id, _ := sess.Values[sessionKeyCartID].(string)
		if id == "" {
			id = uuid.NewString()
			sess.Values[sessionKeyCartID] = id
			if err := sess.Save(c.Request, c.Writer); err != nil {
				logger.Printf("session: save cookie: %v", err)
			}
		}
		c.Set(ctxKeyCartID, id)
		c.Next()
	}
}

func cartID(c *gin.Context) string {
	id, _ := c.Get(ctxKeyCartID)
	s, _ := id.(string)
	return s
}
