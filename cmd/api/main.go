package main

import (
	"os"
	"strconv"

	"go.uber.org/zap"

	"binforest/internal/config"
	"binforest/internal/data"
	"binforest/internal/server"
	"binforest/internal/trainer"
	"binforest/pkg/utils"
)

func envInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func main() {
	logger := utils.Logger()
	defer logger.Sync()

	cfg := config.Default()
	if path := os.Getenv("CONFIG"); path != "" {
		c, err := config.Load(path)
		if err != nil {
			logger.Fatal("Falha ao ler configuração", zap.Error(err))
		}
		cfg = c
	}
	if v := os.Getenv("DATA"); v != "" {
		cfg.Data = v
	}
	cfg.MaxDepth = envInt("MAX_DEPTH", cfg.MaxDepth)
	cfg.Trees = envInt("TREES", cfg.Trees)
	cfg.Seed = int64(envInt("SEED", int(cfg.Seed)))
	if err := cfg.Validate(); err != nil {
		logger.Fatal("Configuração inválida", zap.Error(err))
	}

	src := data.CSVSource{Path: cfg.Data, LabelColumn: cfg.LabelColumn, Header: cfg.Header, Binarize: cfg.Binarize}
	res, err := trainer.Run(src, trainer.Params{MaxDepth: cfg.MaxDepth, Trees: cfg.Trees, Seed: cfg.Seed}, logger)
	if err != nil {
		logger.Fatal("Falha no treino", zap.Error(err))
	}

	s := &server.Server{
		Tree:     res.Tree.Root,
		Forest:   res.Forest.Trees,
		Features: res.Dataset.Features(),
		Names:    res.Dataset.Names,
		APIKey:   os.Getenv("API_KEY"),
		Logger:   logger,
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info("API pronta", zap.String("port", port))
	if err := s.Router().Run(":" + port); err != nil {
		logger.Fatal("Servidor encerrado", zap.Error(err))
	}
}
