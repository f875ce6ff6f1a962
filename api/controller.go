package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ch1ch0gz/NFTMortgage/interfaces"
	"github.com/ch1ch0gz/NFTMortgage/mortgage"
	"github.com/ch1ch0gz/NFTMortgage/mortgagemanager"
)

const VERSION = "0.01"

// ApiController exposes read-only projections of the escrow ledger. All
// mutating operations go through the host ledger, never through this API.
type ApiController struct {
	ledger    *mortgagemanager.Ledger
	log       interfaces.ILogger
	startTime time.Time
}

type HealthCheckResponse struct {
	Status        string
	Version       string
	UptimeSeconds int
	Halted        bool
}

type MortgagesResponse struct {
	Total     int
	Mortgages []Mortgage
}

type Mortgage struct {
	ID              uint64
	Status          string
	Seller          string
	Buyer           string
	Collection      string
	TokenID         string
	SettlementAsset string
	Price           string
	Interest        string
	InitialDeposit  string
	Duration        uint64
	PeriodsPaid     uint64
	LastPayment     *string
}

type EventsResponse struct {
	Total  int
	Events []Event
}

type Event struct {
	Topic      string
	Name       string
	MortgageID uint64
	Actor      string
	Amount     string
	At         string
}

func NewApiController(ledger *mortgagemanager.Ledger, log interfaces.ILogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID())

	controller := &ApiController{
		ledger:    ledger,
		log:       log,
		startTime: time.Now(),
	}

	r.GET("/healthcheck", controller.healthCheck)
	r.GET("/mortgages", controller.listMortgages)
	r.GET("/mortgages/:id", controller.getMortgage)
	r.GET("/mortgages/:id/summary", controller.getMortgageSummary)
	r.GET("/events", controller.listEvents)

	return r
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("X-Request-ID", uuid.NewString())
		c.Next()
	}
}

func (c *ApiController) healthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, HealthCheckResponse{
		Status:        "healthy",
		Version:       VERSION,
		UptimeSeconds: int(time.Since(c.startTime).Seconds()),
		Halted:        c.ledger.Halted(),
	})
}

func (c *ApiController) listMortgages(ctx *gin.Context) {
	records := c.ledger.Mortgages()

	mortgages := make([]Mortgage, len(records))
	for i, record := range records {
		mortgages[i] = mapMortgage(record)
	}

	ctx.JSON(http.StatusOK, MortgagesResponse{
		Total:     len(mortgages),
		Mortgages: mortgages,
	})
}

func (c *ApiController) getMortgage(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	record, err := c.ledger.GetMortgage(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, mapMortgage(record))
}

func (c *ApiController) getMortgageSummary(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	summary, err := c.ledger.GetMortgageSummary(time.Now(), id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, summary)
}

func (c *ApiController) listEvents(ctx *gin.Context) {
	journal := c.ledger.Events()

	events := make([]Event, len(journal))
	for i, e := range journal {
		event := Event{
			Topic:      e.Topic.Hex(),
			Name:       e.Name,
			MortgageID: e.MortgageID,
			Actor:      e.Actor.Hex(),
			At:         e.At.Format(time.RFC3339),
		}
		if e.Amount != nil {
			event.Amount = e.Amount.String()
		}
		events[i] = event
	}

	ctx.JSON(http.StatusOK, EventsResponse{
		Total:  len(events),
		Events: events,
	})
}

func parseID(ctx *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid mortgage id"})
		return 0, false
	}
	return id, true
}

func mapMortgage(record mortgage.Record) Mortgage {
	m := Mortgage{
		ID:             record.ID,
		Status:         record.Status.String(),
		Seller:         record.Seller.Hex(),
		Collection:     record.Collection.Hex(),
		TokenID:        record.TokenID.String(),
		Price:          record.Price.String(),
		Interest:       record.Interest.String(),
		InitialDeposit: record.InitialDeposit.String(),
		Duration:       record.Duration,
		PeriodsPaid:    record.PeriodsPaid,
	}

	if record.IsNative() {
		m.SettlementAsset = "native"
	} else {
		m.SettlementAsset = record.Token.Hex()
	}
	if record.HasBuyer() {
		m.Buyer = record.Buyer.Hex()
	}
	if !record.LastPayment.IsZero() {
		lastPayment := record.LastPayment.Format(time.RFC3339)
		m.LastPayment = &lastPayment
	}

	return m
}
