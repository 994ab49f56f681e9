package main

import (
	"net/http"
	"tbs/src/apperrors"
	"tbs/src/services"
	"tbs/src/types"

	"github.com/gin-gonic/gin"
)

func hotelStatusFor(err error) int {
	kind, ok := apperrors.KindOf(err)
	switch {
	case ok && kind == apperrors.KindPaymentRequired:
		return http.StatusPaymentRequired
	case ok && kind == apperrors.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

func hotelHandlers(g *gin.RouterGroup, svc *services.HotelsService) *gin.RouterGroup {
	g.
		GET("/hotels", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			hotels, err := svc.GetHotels(ctx.Request.Context(), userId)
			if err != nil {
				ctx.Status(hotelStatusFor(err))
				return
			}
			ctx.JSON(http.StatusOK, hotels)
		}).
		GET("/hotels/:hotelId", func(ctx *gin.Context) {
			var params types.HotelURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			userId := ctx.GetUint("id")
			hotel, err := svc.GetHotel(ctx.Request.Context(), params.HotelID, userId)
			if err != nil {
				ctx.Status(hotelStatusFor(err))
				return
			}
			ctx.JSON(http.StatusOK, hotel)
		})
	return g
}
