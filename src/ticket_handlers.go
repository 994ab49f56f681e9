package main

import (
	"log"
	"net/http"
	"tbs/src/apperrors"
	"tbs/src/services"
	"tbs/src/types"

	"github.com/gin-gonic/gin"
)

func ticketHandlers(g *gin.RouterGroup, svc *services.TicketsService) *gin.RouterGroup {
	g.
		GET("/tickets", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			ticket, err := svc.GetTicket(ctx.Request.Context(), userId)
			if err != nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.JSON(http.StatusOK, ticket)
		}).
		GET("/tickets/types", func(ctx *gin.Context) {
			ticketTypes, err := svc.ListTicketTypes(ctx.Request.Context())
			if err != nil {
				log.Printf("Error retrieving TicketTypes: %s\n", err.Error())
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.JSON(http.StatusOK, ticketTypes)
		}).
		POST("/tickets", func(ctx *gin.Context) {
			var body types.CreateTicketRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			ticket, err := svc.CreateTicket(ctx.Request.Context(), body.TicketTypeID, userId)
			if err != nil {
				if kind, ok := apperrors.KindOf(err); ok && kind == apperrors.KindNotFound {
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
					return
				}
				log.Printf("error creating ticket: %s", err.Error())
				ctx.Status(http.StatusBadRequest)
				return
			}
			ctx.JSON(http.StatusCreated, ticket)
		})
	return g
}
