package main

import (
	"flag"
	"fmt"

	"go.uber.org/zap"

	"binforest/internal/config"
	"binforest/internal/data"
	"binforest/internal/report"
	"binforest/pkg/utils"
)

func main() {
	logger := utils.Logger()
	defer logger.Sync()

	cfg := config.Default()
	cfgPath := flag.String("config", "", "Arquivo de configuração YAML ou TOML")
	flag.String("data", cfg.Data, "CSV de entrada")
	flag.Int("max_depth", cfg.Curve.MaxDepth, "Maior profundidade da curva")
	flag.Int("trees", cfg.Trees, "Número de árvores da floresta")
	flag.String("out_img", cfg.Curve.OutImg, "PNG de saída")
	flag.String("out_csv", cfg.Curve.OutCSV, "CSV de saída")
	flag.Parse()

	if *cfgPath != "" {
		c, err := config.Load(*cfgPath)
		if err != nil {
			logger.Fatal("Falha ao ler configuração", zap.Error(err))
		}
		cfg = c
	}
	applyFlags(&cfg, flag.CommandLine)
	if err := cfg.Validate(); err != nil {
		logger.Fatal("Configuração inválida", zap.Error(err))
	}

	ds, err := data.CSVSource{Path: cfg.Data, LabelColumn: cfg.LabelColumn, Header: cfg.Header, Binarize: cfg.Binarize}.Load()
	if err != nil {
		logger.Fatal("Falha ao carregar dados", zap.Error(err))
	}
	if err := ds.Validate(); err != nil {
		logger.Fatal("Dataset inválido", zap.Error(err))
	}

	points, err := report.DepthCurve(ds.X, ds.Y, cfg.Curve.MaxDepth, cfg.Trees, cfg.Seed)
	if err != nil {
		logger.Fatal("Falha ao calcular curva", zap.Error(err))
	}
	for _, p := range points {
		fmt.Printf("max_depth=%d | tree=%.3f | forest=%.3f | depth=%d | leaves=%d\n", p.MaxDepth, p.TreeAcc, p.ForestAcc, p.TreeDepth, p.Leaves)
	}

	if err := report.WriteCSV(cfg.Curve.OutCSV, points); err != nil {
		logger.Warn("Falha ao salvar CSV da curva", zap.Error(err))
	}
	if err := report.PlotPNG(cfg.Curve.OutImg, points); err != nil {
		logger.Warn("Falha ao salvar PNG da curva", zap.Error(err))
	} else {
		logger.Info("Curva gerada", zap.String("png", cfg.Curve.OutImg), zap.String("csv", cfg.Curve.OutCSV))
	}
}
