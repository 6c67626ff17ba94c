package routes

import (
	"log"
	"os"
	"strconv"
	"strings"

	_ "cabinet_kiosk/docs" // This will be auto-generated
	"cabinet_kiosk/internal/adapter/http/handlers"
	repository2 "cabinet_kiosk/internal/adapter/persistence/repository"
	"cabinet_kiosk/internal/infrastructure/catalog"
	"cabinet_kiosk/internal/infrastructure/database"
	"cabinet_kiosk/internal/infrastructure/documents"
	"cabinet_kiosk/internal/infrastructure/payments"
	"cabinet_kiosk/internal/usecase"
	"cabinet_kiosk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	catalogService := buildCatalogService(ddb)

	estimateRepo := repository2.NewEstimateDynamoRepository(ddb)
	paymentRepo := repository2.NewDepositPaymentDynamoRepository(ddb)

	builderUseCase := usecase.NewBuilderUseCase(catalogService)
	importUseCase := usecase.NewImportUseCase(catalogService, builderUseCase)

	exporter := documents.NewExporter(os.Getenv("COMPANY_NAME"), documents.NewMailerFromEnv())
	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, builderUseCase, exporter)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}
	paymentUseCase := usecase.NewDepositPaymentUseCase(paymentRepo, estimateRepo, paymentGateway)

	builderHandler := handlers.NewBuilderHandler(builderUseCase, importUseCase)
	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	paymentHandler := handlers.NewDepositPaymentHandler(paymentUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogService)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addKioskRoutes(v1, builderHandler, estimateHandler, paymentHandler, catalogHandler)
}

// buildCatalogService selects the price source: CATALOG_MODE=memory uses the
// seeded in-process list, anything else reads the DynamoDB catalog table.
func buildCatalogService(ddb *dynamodb.Client) interfaces.ICatalogService {
	mode := strings.ToLower(strings.TrimSpace(os.Getenv("CATALOG_MODE")))
	if mode == "memory" {
		log.Printf("[catalog] using in-memory seeded catalog")
		return catalog.NewMemoryCatalog()
	}
	return repository2.NewCatalogDynamoRepository(ddb)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
