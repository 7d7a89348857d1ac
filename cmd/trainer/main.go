package main

import (
	"flag"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"binforest/internal/config"
	"binforest/internal/data"
	"binforest/internal/models"
	"binforest/internal/trainer"
	"binforest/pkg/utils"
)

func main() {
	logger := utils.Logger()
	defer logger.Sync()

	cfg := config.Default()
	cfgPath := flag.String("config", "", "Arquivo de configuração YAML ou TOML")
	regen := flag.Bool("regen", false, "Gerar dataset sintético antes do treino")
	dataPath := flag.String("data", "", "CSV de entrada (sobrepõe a configuração)")
	maxDepth := flag.Int("max_depth", -1, "Profundidade máxima da árvore (sobrepõe a configuração)")
	trees := flag.Int("trees", 0, "Número de árvores da floresta (sobrepõe a configuração)")
	seed := flag.Int64("seed", 0, "Semente da amostragem bootstrap (sobrepõe a configuração)")
	binarize := flag.Bool("binarize", false, "Binarizar colunas numéricas pela mediana")
	dump := flag.Bool("dump", false, "Imprimir a árvore em pré-ordem")
	flag.Parse()

	if *cfgPath != "" {
		c, err := config.Load(*cfgPath)
		if err != nil {
			logger.Fatal("Falha ao ler configuração", zap.Error(err))
		}
		cfg = c
	}
	if *dataPath != "" {
		cfg.Data = *dataPath
	}
	if *maxDepth >= 0 {
		cfg.MaxDepth = *maxDepth
	}
	if *trees > 0 {
		cfg.Trees = *trees
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *binarize {
		cfg.Binarize = true
	}
	if *regen {
		cfg.Generate.Enabled = true
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("Configuração inválida", zap.Error(err))
	}

	if cfg.Generate.Enabled {
		logger.Info("Gerando dataset sintético", zap.Int("n", cfg.Generate.Rows), zap.String("out", cfg.Data))
		rng := rand.New(rand.NewSource(cfg.Seed))
		if err := data.GenerateSynthetic(rng, cfg.Generate.Rows, cfg.Generate.Features, cfg.Generate.Noise, cfg.Data); err != nil {
			logger.Fatal("Falha ao gerar dataset", zap.Error(err))
		}
	}

	src := data.CSVSource{Path: cfg.Data, LabelColumn: cfg.LabelColumn, Header: cfg.Header, Binarize: cfg.Binarize}
	res, err := trainer.Run(src, trainer.Params{MaxDepth: cfg.MaxDepth, Trees: cfg.Trees, Seed: cfg.Seed}, logger)
	if err != nil {
		logger.Fatal("Falha no treino", zap.Error(err))
	}

	if *dump {
		fmt.Println(models.Preorder(res.Tree.Root))
	}
	fmt.Println("Tree Accuracy:", res.TreeAccuracy)
	for i, acc := range res.ForestReport.TreeAccuracies {
		fmt.Printf("DT %d: %v\n", i, acc)
	}
	fmt.Println("Forest accuracy:", res.ForestReport.Accuracy)
}
