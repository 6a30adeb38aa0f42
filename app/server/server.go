package server

import (
	"context"
	"log"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/yvesmonem/ai-productivity-assistant/app/agent"
	"github.com/yvesmonem/ai-productivity-assistant/app/api"
	"github.com/yvesmonem/ai-productivity-assistant/config"
	"github.com/yvesmonem/ai-productivity-assistant/gateway"
	"github.com/yvesmonem/ai-productivity-assistant/model"
	"github.com/yvesmonem/ai-productivity-assistant/objectstore"
	"github.com/yvesmonem/ai-productivity-assistant/store"
)

var fiberConfig = fiber.Config{
	ErrorHandler: api.ErrorHandler,
}

type Server struct {
	cfg    config.Config
	app    *fiber.App
	logger *slog.Logger
}

func NewServer(cfg config.Config) *Server {
	return &Server{
		cfg:    cfg,
		logger: slog.Default(),
	}
}

func (s *Server) Stop() {
	if s.app != nil {
		if err := s.app.Shutdown(); err != nil {
			s.logger.Error("error to shut down server", "error", err.Error())
		}
	}
	s.logger.Info("server stopped")
}

func (s *Server) Run() {
	ctx := context.Background()

	index, err := s.newVectorStore(ctx)
	if err != nil {
		log.Fatal("error to set up vector store: ", err)
		return
	}

	files, err := objectstore.NewMinioStore(objectstore.Config{
		Endpoint:  s.cfg.Minio.Endpoint,
		AccessKey: s.cfg.Minio.AccessKey,
		SecretKey: s.cfg.Minio.SecretKey,
		Bucket:    s.cfg.Minio.Bucket,
		UseSSL:    s.cfg.Minio.UseSSL,
	})
	if err != nil {
		log.Fatal("error to connect to object storage: ", err)
		return
	}

	var (
		gw       = gateway.NewClient(s.cfg.GatewayURL)
		embedder = model.NewOllamaEmbedder(s.cfg.Ollama.URL, s.cfg.Ollama.Model)
		llm      = model.NewCompletionClient(s.cfg.LLM.URL, s.cfg.LLM.APIKey, s.cfg.LLM.Model)
		stt      = model.NewWhisperClient(s.cfg.Whisper.URL, s.cfg.Whisper.APIKey, s.cfg.Whisper.Model)

		responder   = agent.NewResponder(gw, embedder, index, llm, s.logger)
		summarizer  = agent.NewSummarizer(gw, files, llm, nil, s.logger)
		transcriber = agent.NewTranscriber(gw, files, stt, llm, s.logger)
		reporter    = agent.NewReporter(llm, s.logger)

		app = fiber.New(fiberConfig)

		checkHandler      = api.NewCheckHandler()
		chatHandler       = api.NewChatHandler(responder)
		summarizeHandler  = api.NewSummarizeHandler(summarizer)
		transcribeHandler = api.NewTranscribeHandler(transcriber)
		reportHandler     = api.NewReportHandler(reporter)

		check = app.Group("/check")
		ai    = app.Group("/ai")
	)

	check.Get("/healthy", checkHandler.HandleHealthy)
	ai.Post("/chat/initialize", chatHandler.HandleInitializeChat)
	ai.Post("/chat", chatHandler.HandleChat)
	ai.Post("/summarize-pdf", summarizeHandler.HandleSummarizePDF)
	ai.Post("/transcribe", transcribeHandler.HandleTranscribe)
	ai.Post("/generate-report", reportHandler.HandleGenerateReport)

	s.app = app

	if err := app.Listen(s.cfg.ServerAddr); err != nil {
		s.logger.Error("error to start server", "error", err.Error())
		return
	}
}

func (s *Server) newVectorStore(ctx context.Context) (store.VectorStorer, error) {
	if s.cfg.VectorStore == "memory" {
		s.logger.Info("using in-memory vector store")
		return store.NewMemoryStore(), nil
	}

	pg, err := store.NewPostgresStore(ctx, s.cfg.Postgres.ConnString())
	if err != nil {
		return nil, err
	}
	if err := pg.Init(ctx); err != nil {
		return nil, err
	}
	return pg, nil
}
