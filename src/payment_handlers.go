package main

import (
	"net/http"
	"tbs/src/apperrors"
	"tbs/src/lib"
	"tbs/src/metrics"
	"tbs/src/services"
	"tbs/src/types"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func paymentStatusFor(err error) int {
	kind, ok := apperrors.KindOf(err)
	switch {
	case ok && kind == apperrors.KindUnauthorized:
		return http.StatusUnauthorized
	case ok && kind == apperrors.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

func paymentHandlers(g *gin.RouterGroup, svc *services.PaymentsService) *gin.RouterGroup {
	g.
		GET("/payments", func(ctx *gin.Context) {
			var query types.PaymentsQuery
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			userId := ctx.GetUint("id")
			payment, err := svc.GetPayment(ctx.Request.Context(), query.TicketID, userId)
			if err != nil {
				ctx.JSON(paymentStatusFor(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, payment)
		}).
		POST("/payments/process", func(ctx *gin.Context) {
			var body types.CreatePaymentRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			payment, err := svc.CreatePaymentProcess(ctx.Request.Context(), services.CreatePaymentProcessInput{
				TicketID:   body.TicketID,
				UserID:     userId,
				CardIssuer: body.CardData.Issuer,
				CardNumber: body.CardData.Number,
			})
			if err != nil {
				metrics.PaymentOperations.WithLabelValues("process", "error").Inc()
				ctx.JSON(paymentStatusFor(err), gin.H{"error": err.Error()})
				return
			}
			metrics.PaymentOperations.WithLabelValues("process", "ok").Inc()
			go lib.PublishEvent(ctx.Copy(), "payment.processed", types.PaymentProcessedEvent{
				RequestID: uuid.NewString(),
				PaymentID: payment.ID,
				TicketID:  payment.TicketID,
				Value:     payment.Value,
				CreatedAt: time.Now().UTC(),
			})
			ctx.JSON(http.StatusOK, payment)
		})
	return g
}
