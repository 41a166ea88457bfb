// gensheet 生成占位精灵图集
//
// 用法:
//
//	go run ./cmd/gensheet -o assets/finalproject_gameSprites.png
//
// 按配置中的坐标表在黑色背景上画出彩色矩形，没有原版美术资源时可用来运行游戏。
// 仓库不附带 assets/finalproject_gameSprites.png，首次运行 Ebitengine 前端之前先执行上面的命令，
// 或者用 -sheet 指向自己的图集。终端前端不需要图集。
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/decker502/frogger/pkg/config"
	"github.com/decker502/frogger/pkg/logging"
	"github.com/decker502/frogger/pkg/utils"
)

var (
	output     = flag.String("o", "", "输出路径，默认使用配置中的 sprites.sheet")
	configPath = flag.String("config", "", "配置文件路径，默认使用内置配置")
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
)

func main() {
	flag.Parse()
	logging.Setup(*verbose, nil)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadGameConfig(*configPath); err != nil {
			log.Fatal().Err(err).Msg("配置加载失败")
		}
	}

	path := *output
	if path == "" {
		path = cfg.Sprites.Sheet
	}
	if err := writeSheet(path, cfg.Sprites); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("图集生成失败")
	}
	fmt.Printf("✓ 占位图集已写入 %s\n", path)
}

func writeSheet(path string, table config.SpriteTable) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(file, utils.PlaceholderSheet(table)); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
