package main

import (
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"strconv"
	"tbs/src/boot"
	"tbs/src/lib"
	"tbs/src/metrics"
	"tbs/src/middlewares"
	"tbs/src/repositories"
	"tbs/src/services"
	"time"

	"github.com/covalenthq/lumberjack"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// expDateValidatorFunc accepts MM/YY card expiration dates that have not
// passed yet.
func expDateValidatorFunc(fl validator.FieldLevel) bool {
	expires, err := time.Parse("01/06", fl.Field().String())
	if err != nil {
		return false
	}
	return expires.AddDate(0, 1, 0).After(time.Now())
}

func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("expdate", expDateValidatorFunc)
	}
}

func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(middlewares.SecureHeaders)
	router.Use(metrics.PrometheusMiddleware())
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, "ok")
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return router
}

func maintenanceModeMiddleware(g *gin.Engine) *gin.Engine {
	g.Use(func(ctx *gin.Context) {
		mm := os.Getenv("MAINTENANCE_MODE")
		atoi, err := strconv.ParseBool(mm)
		if err == nil && atoi {
			err := errors.New("server is under maintenance")
			log.Println(err.Error())
			ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, err.Error())
			return
		}
	})
	return g
}

// apiRoutes mounts every authenticated route group against the injected
// services. Repositories are built once from the given DB handle; nothing
// below the handlers touches a package-level store.
func apiRoutes(router *gin.Engine, gdb *gorm.DB) *gin.RouterGroup {
	bookingRepo := repositories.NewBookingRepository(gdb)
	hotelRepo := repositories.NewHotelRepository(gdb, lib.GetRedisClient())
	paymentRepo := repositories.NewPaymentRepository(gdb)
	ticketRepo := repositories.NewTicketRepository(gdb)

	bookingSvc := services.NewBookingService(bookingRepo, ticketRepo)
	hotelsSvc := services.NewHotelsService(hotelRepo)
	paymentsSvc := services.NewPaymentsService(paymentRepo, ticketRepo)
	ticketsSvc := services.NewTicketsService(ticketRepo)

	authorized := router.Group("/")
	authorized.Use(middlewares.AuthMiddleware)
	bookingHandlers(authorized, bookingSvc)
	hotelHandlers(authorized, hotelsSvc)
	paymentHandlers(authorized, paymentsSvc)
	ticketHandlers(authorized, ticketsSvc)
	return authorized
}

func initLogger() {
	cwd, _ := os.Getwd()
	serverLogs := path.Join(cwd, "logs", "server.log")
	apiLogs := path.Join(cwd, "logs", "api.log")
	gin.ForceConsoleColor()

	f, _ := os.Create(apiLogs)
	gin.DefaultWriter = io.MultiWriter(f, os.Stdout)
	log.SetOutput(&lumberjack.Logger{
		Filename:   serverLogs,
		MaxSize:    500,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	})
}

func main() {
	apiEnv := os.Getenv("API_ENV")
	if apiEnv == "local" {
		cwd, _ := os.Getwd()
		if err := godotenv.Load(path.Join(cwd, ".env")); err != nil {
			panic(err)
		}
	}
	initLogger()
	registerValidations()

	gdb := boot.InitDb()
	boot.InitBroker()

	router := setupRouter()
	if apiEnv == "local" {
		router.Use(cors.Default())
	} else {
		cc := cors.DefaultConfig()
		cc.AllowMethods = append(cc.AllowMethods, "GET", "POST", "PUT", "DELETE", "HEAD")
		cc.AllowHeaders = append(cc.AllowHeaders, "Origin", "Authorization")
		cc.AllowOrigins = []string{os.Getenv("APP_HOST")}
		router.Use(cors.New(cc))
	}

	router = maintenanceModeMiddleware(router)
	apiRoutes(router, gdb)

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("server error: %s\n", err.Error())
	}
}
