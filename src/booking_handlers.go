package main

import (
	"log"
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

func bookingHandlers(g *gin.RouterGroup, svc *services.BookingService) *gin.RouterGroup {
	g.
		GET("/booking", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			booking, err := svc.GetBooking(ctx.Request.Context(), userId)
			if err != nil {
				if kind, ok := apperrors.KindOf(err); ok && kind == apperrors.KindNotFound {
					ctx.Status(http.StatusNotFound)
					return
				}
				log.Printf("Error retrieving Booking: %s\n", err.Error())
				ctx.Status(http.StatusBadRequest)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"id": booking.ID, "Room": booking.Room})
		}).
		POST("/booking", func(ctx *gin.Context) {
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				// Malformed bodies fall into the same forbidden bucket as
				// the service's own roomId guard on this route.
				ctx.Status(http.StatusForbidden)
				return
			}
			userId := ctx.GetUint("id")
			bookingId, err := svc.CreateBooking(ctx.Request.Context(), body.RoomID, userId)
			if err != nil {
				metrics.BookingOperations.WithLabelValues("create", "error").Inc()
				kind, ok := apperrors.KindOf(err)
				if ok && kind == apperrors.KindNotFound {
					ctx.Status(http.StatusNotFound)
					return
				}
				// NoVacancies, ineligible tickets and anything unrecognized
				// collapse to 403 on this route.
				ctx.Status(http.StatusForbidden)
				return
			}
			metrics.BookingOperations.WithLabelValues("create", "ok").Inc()
			go lib.PublishEvent(ctx.Copy(), "booking.created", types.BookingCreatedEvent{
				RequestID: uuid.NewString(),
				BookingID: bookingId,
				RoomID:    body.RoomID,
				UserID:    userId,
				CreatedAt: time.Now().UTC(),
			})
			ctx.JSON(http.StatusOK, gin.H{"bookingId": bookingId})
		}).
		PUT("/booking/:bookingId", func(ctx *gin.Context) {
			var params types.BookingURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusForbidden)
				return
			}
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.Status(http.StatusForbidden)
				return
			}
			userId := ctx.GetUint("id")
			bookingId, err := svc.UpdateBooking(ctx.Request.Context(), body.RoomID, params.BookingID, userId)
			if err != nil {
				metrics.BookingOperations.WithLabelValues("update", "error").Inc()
				kind, ok := apperrors.KindOf(err)
				switch {
				case ok && kind == apperrors.KindNotFound:
					ctx.Status(http.StatusNotFound)
				case ok && kind == apperrors.KindUnauthorized:
					ctx.Status(http.StatusUnauthorized)
				default:
					ctx.Status(http.StatusForbidden)
				}
				return
			}
			metrics.BookingOperations.WithLabelValues("update", "ok").Inc()
			ctx.JSON(http.StatusOK, gin.H{"bookingId": bookingId})
		})
	return g
}
