package main

import (
	"flag"

	"binforest/internal/config"
)

// applyFlags copies onto cfg only the flags set on the command line, so they
// override a config file without its values being reset to flag defaults.
func applyFlags(cfg *config.Config, fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		v := f.Value.(flag.Getter).Get()
		switch f.Name {
		case "data":
			cfg.Data = v.(string)
		case "max_depth":
			cfg.Curve.MaxDepth = v.(int)
		case "trees":
			cfg.Trees = v.(int)
		case "out_img":
			cfg.Curve.OutImg = v.(string)
		case "out_csv":
			cfg.Curve.OutCSV = v.(string)
		}
	})
}
