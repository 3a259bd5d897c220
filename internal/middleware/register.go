package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"github.com/sevirov89/DataBaseBot/internal/service"
)

// RegisterUser creates middleware that upserts the sender into the
// users table before the handler runs. A failed upsert is logged but
// never blocks the conversation.
func RegisterUser(userService *service.UserService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return next(c)
			}

			if err := userService.RegisterUser(sender.ID, sender.Username, sender.FirstName); err != nil {
				logger.Error("Failed to register user in middleware",
					zap.Int64("user_id", sender.ID),
					zap.Error(err),
				)
			}

			return next(c)
		}
	}
}
