package notifier_http_handler

import (
	"bufio"
	"encoding/json"
	"fmt"
	"time"

	"github.com/init-pkg/excel-import/domain/app"
	"github.com/init-pkg/excel-import/domain/dtos"
	notifier_service "github.com/init-pkg/excel-import/internal/app/notifier/service"
	nova_ctx "github.com/init-pkg/nova/shared/ctx"

	"github.com/gofiber/fiber/v3"
	"github.com/valyala/fasthttp"
)

// NotifierHttpHandler exposes a job's notification room to HTTP clients:
// an event stream that joins the room for the lifetime of the request,
// and a liveness ping.
type NotifierHttpHandler struct {
	service *notifier_service.Service
}

func New(service *notifier_service.Service) *NotifierHttpHandler {
	return &NotifierHttpHandler{service}
}

func (this *NotifierHttpHandler) Register(mainApp *fiber.App) {
	var app = mainApp.Group("/file")

	app.Get("/events/:jobId", this.streamEvents)
	app.Get("/ping", this.ping)
}

// streamEvents godoc
// @Summary Stream a job's upload events
// @Description Joins the job's notification room and relays its events as server-sent events until the client disconnects. Events published before the request arrives are not replayed.
// @Tags file
// @Produce text/event-stream
// @Param jobId path string true "Job ID"
// @Success 200 {string} string "server-sent event stream"
// @Router /file/events/{jobId} [get]
func (this *NotifierHttpHandler) streamEvents(fctx fiber.Ctx) error {
	jobID := fctx.Params("jobId")

	fctx.Set(fiber.HeaderContentType, "text/event-stream")
	fctx.Set(fiber.HeaderCacheControl, "no-cache")
	fctx.Set(fiber.HeaderConnection, "keep-alive")

	// The request context ends when the client goes away, which also
	// stops the forwarding goroutine behind the channel.
	ctx := fctx.Context()
	events, leave := this.service.Subscribe(ctx, jobID)

	ctx.SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer func() { _ = leave() }()

		for msg := range events {
			data, err := json.Marshal(msg)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", msg.Event, data)
			if err := w.Flush(); err != nil {
				return
			}
		}
	}))

	return nil
}

// ping godoc
// @Summary Notification channel liveness
// @Tags file
// @Success 200 {object} dtos.PongResponse
// @Failure 503 {object} dtos.ErrorResponse
// @Router /file/ping [get]
func (this *NotifierHttpHandler) ping(fctx fiber.Ctx) error {
	var ctx = nova_ctx.Wrap(fctx.Context())

	if err := this.service.Ping(ctx); err != nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
	}

	return fctx.JSON(dtos.PongResponse{
		Event:     app.EventPong,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
