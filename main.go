package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/decker502/frogger/pkg/app"
	"github.com/decker502/frogger/pkg/config"
	"github.com/decker502/frogger/pkg/embedded"
	"github.com/decker502/frogger/pkg/game"
	"github.com/decker502/frogger/pkg/logging"
	"github.com/decker502/frogger/pkg/systems"
	"github.com/decker502/frogger/pkg/tui"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	frontend   = flag.String("frontend", "ebiten", "前端: ebiten（窗口）或 tui（终端）")
	sheetPath  = flag.String("sheet", "", "精灵图集路径，默认使用配置中的 sprites.sheet（assets/ 为空时先运行 go run ./cmd/gensheet）")
	seed       = flag.Int64("seed", 0, "地图随机种子，0 表示使用当前时间")
	configPath = flag.String("config", "", "配置文件路径，默认使用内嵌的 data/frogger.yaml")
	logPath    = flag.String("log", "", "日志文件路径（tui 模式下默认不输出日志）")
)

func main() {
	flag.Parse()

	logOut, closeLog, err := openLogOutput(*logPath, *frontend)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()
	logging.Setup(*verbose, logOut)

	embedded.Init(dataFS)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Error().Err(err).Msg("配置加载失败")
		exit(err, closeLog)
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	switch *frontend {
	case "ebiten":
		err = runEbiten(cfg, s)
	case "tui":
		err = runTUI(cfg, s)
	default:
		err = fmt.Errorf("unknown frontend %q", *frontend)
	}
	if err != nil {
		log.Error().Err(err).Str("frontend", *frontend).Msg("游戏异常退出")
		exit(err, closeLog)
	}
}

// exit tui 模式下日志可能被丢弃，错误总是打印到 stderr
func exit(err error, closeLog func()) {
	closeLog()
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// loadConfig 未指定路径时读取内嵌的默认配置
func loadConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		return config.LoadGameConfig(path)
	}
	data, err := embedded.ReadFile(config.DefaultConfigPath)
	if err != nil {
		return nil, err
	}
	return config.Parse(data)
}

// openLogOutput 终端前端独占 stdout/stderr，日志只能写文件
func openLogOutput(path, frontend string) (io.Writer, func(), error) {
	if path == "" {
		if frontend == "tui" {
			return io.Discard, func() {}, nil
		}
		return os.Stderr, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func runEbiten(cfg *config.GameConfig, seed int64) error {
	a, err := app.NewApp(app.Config{
		Game:      cfg,
		SheetPath: *sheetPath,
		Seed:      seed,
		Logger:    logging.For("app"),
	})
	if err != nil {
		return err
	}
	return a.Run()
}

func runTUI(cfg *config.GameConfig, seed int64) error {
	sim, err := systems.NewSimulation(cfg, rand.New(rand.NewSource(seed)), logging.For("sim"))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := logging.For("tui")
	logger.Info().Int64("seed", seed).Msg("terminal frontend ready")
	err = tui.New(screen, sim, cfg, logger).Run(ctx)
	logger.Info().
		Bool("won", sim.State().Won()).
		Int("score", sim.State().Score).
		Int("steps", sim.Steps()).
		Msg("game over")
	if errors.Is(err, game.ErrQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
