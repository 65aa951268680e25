package main

import (
	"context"
	"errors"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/anglerfp/rfpgen/fixture"
	"github.com/anglerfp/rfpgen/renderer"
	canvasrenderer "github.com/anglerfp/rfpgen/renderer/canvas"
)

// defaultOutput 是样例 PDF 的默认相对输出路径，与下游解析器测试约定一致。
const defaultOutput = "TestData/test-rfp.pdf"

func main() {
	log := newLogger()
	defer log.Sync()

	cmd := &cli.Command{
		Name:  "rfpgen",
		Usage: "生成用于 RFP 解析器测试的样例 PDF",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "out",
				Value: defaultOutput,
				Usage: "PDF 输出路径",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			out := cmd.String("out")
			builder := fixture.NewBuilder(canvasrenderer.NewRenderer())
			if err := builder.Build(out); err != nil {
				return err
			}
			log.Info("已生成样例 PDF", zap.String("path", out))
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, renderer.ErrUnavailable) {
			log.Error("渲染后端不可用，请检查内置字体资源是否完整", zap.Error(err))
		} else {
			log.Error("生成 PDF 失败", zap.Error(err))
		}
		log.Sync()
		os.Exit(1)
	}
}

// newLogger 构建控制台日志：普通信息走 stdout，错误走 stderr。
func newLogger() *zap.Logger {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	enc := zapcore.NewConsoleEncoder(ec)

	lowPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return zapcore.InfoLevel <= lvl && lvl < zapcore.ErrorLevel
	})
	highPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel
	})

	core := zapcore.NewTee(
		zapcore.NewCore(enc, zapcore.Lock(os.Stdout), lowPriority),
		zapcore.NewCore(enc, zapcore.Lock(os.Stderr), highPriority),
	)
	return zap.New(core)
}
