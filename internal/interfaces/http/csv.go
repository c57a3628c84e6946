package http

import (
	"github.com/gofiber/fiber/v2"
)

// sendCsv responde un CSV UTF-8 como attachment descargable.
func sendCsv(c *fiber.Ctx, filename, content string) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.SendString(content)
}

// sendPdf responde un PDF como attachment descargable.
func sendPdf(c *fiber.Ctx, filename string, content []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(content)
}
