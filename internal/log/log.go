package log

import (
	"io"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

var logger = newLogger(os.Stdout)

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05Z07:00",
		FieldMap:        logrus.FieldMap{logrus.FieldKeyTime: "ts", logrus.FieldKeyMsg: "action"},
	})
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetOutput redirects all entries, e.g. to stdout plus a log file.
func SetOutput(w io.Writer) { logger.SetOutput(w) }

// SetLevel accepts logrus level names; unknown names are ignored.
func SetLevel(level string) {
	if lv, err := logrus.ParseLevel(level); err == nil {
		logger.SetLevel(lv)
	}
}

// Logger exposes the underlying logger for non-request logging.
func Logger() *logrus.Logger { return logger }

func entry(c *fiber.Ctx, err error, fields map[string]any) *logrus.Entry {
	e := logger.WithFields(logrus.Fields(fields))
	if c != nil {
		e = e.WithFields(logrus.Fields{
			"ip":     c.IP(),
			"method": c.Method(),
			"path":   c.Path(),
			"status": c.Response().StatusCode(),
		})
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			e = e.WithField("req_id", rid)
		}
		if b, ok := c.Locals("battle_id").(string); ok && b != "" {
			e = e.WithField("battle_id", b)
		}
	}
	if err != nil {
		e = e.WithField("err", err.Error())
	}
	return e
}

func Info(c *fiber.Ctx, action string, fields map[string]any) { entry(c, nil, fields).Info(action) }

func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	entry(c, nil, fields).WithField("audit", true).Info(action)
}

func Security(c *fiber.Ctx, action string, fields map[string]any) {
	entry(c, nil, fields).Warn(action)
}

func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	entry(c, err, fields).Error(action)
}
