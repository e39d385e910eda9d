package routes

import (
	"log"
	"os"
	"strconv"

	_ "estamparia_xpto/docs" // This will be auto-generated
	"estamparia_xpto/internal/adapter/http/handlers"
	repository2 "estamparia_xpto/internal/adapter/persistence/repository"
	"estamparia_xpto/internal/infrastructure/database"
	"estamparia_xpto/internal/infrastructure/erp"
	"estamparia_xpto/internal/infrastructure/secrets"
	"estamparia_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Default Bling routing ids; overridable per environment.
const (
	defaultBlingContatoID   = "16949456496"
	defaultBlingCategoriaID = "14690272874"
)

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
	secretsDdb := database.ConnectSecretsDynamoDB()

	pedidoRepo := repository2.NewPedidoDynamoRepository(ddb)
	fechamentoRepo := repository2.NewFechamentoDynamoRepository(ddb)
	logRepo := repository2.NewLogDynamoRepository(ddb)

	secretProvider := secrets.NewDynamoSecretProvider(secretsDdb, os.Getenv("SECRETS_TABLE"))

	blingGateway, err := erp.NewBlingGateway(os.Getenv("BLING_PROXY_URL"))
	if err != nil {
		// Closures cannot work without the relay, so refuse to start.
		log.Fatalf("Bling gateway not configured: %v", err)
	}

	fechamentoCfg := usecase.FechamentoConfig{
		CampoValor:  usecase.CampoValor(getenvDefault("FECHAMENTO_CAMPO_VALOR", string(usecase.CampoValorCusto))),
		ContatoID:   getenvDefault("BLING_CONTATO_ID", defaultBlingContatoID),
		CategoriaID: getenvDefault("BLING_CATEGORIA_ID", defaultBlingCategoriaID),
	}

	pedidoUseCase := usecase.NewPedidoUseCase(pedidoRepo)
	fechamentoUseCase := usecase.NewFechamentoUseCase(pedidoRepo, fechamentoRepo, logRepo, blingGateway, secretProvider, fechamentoCfg)
	analyticsUseCase := usecase.NewAnalyticsUseCase(pedidoRepo)

	pedidoHandler := handlers.NewPedidoHandler(pedidoUseCase)
	fechamentoHandler := handlers.NewFechamentoHandler(fechamentoUseCase)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstampariaRoutes(v1, pedidoHandler, fechamentoHandler, analyticsHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
