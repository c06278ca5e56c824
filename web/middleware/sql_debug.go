package middleware

import (
	"github.com/coder-yr/taste-link/database"
	"github.com/gofiber/fiber/v2"
)

const localSQLMark = "sql_mark"

// SQLDebugMiddleware tracks the SQL queries run while serving the request.
// Handlers rendering a page read them through RequestQueries; after the
// handler returns they are also stored in the SQLQueries local.
func SQLDebugMiddleware(recorder *database.QueryRecorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(localSQLMark, recorder.LastID())

		// Process request
		err := c.Next()

		requestQueries := RequestQueries(c, recorder)
		c.Locals("SQLQueries", requestQueries)
		c.Locals("TotalSQLQueries", len(requestQueries))

		return err
	}
}

// RequestQueries returns the queries recorded since the request started,
// newest first. Without the middleware it returns nothing.
func RequestQueries(c *fiber.Ctx, recorder *database.QueryRecorder) []database.QueryLog {
	mark, ok := c.Locals(localSQLMark).(int)
	if !ok {
		return []database.QueryLog{}
	}
	return recorder.Since(mark)
}
