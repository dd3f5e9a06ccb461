package logging

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ogurasousui/employee-pairs/internal/platform/config"
)

// New は設定に従って zap ロガーを構築します。
// development が true の場合はコンソール形式、それ以外は JSON 形式で出力します。
func New(cfg config.LogConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(cfg.ZapLevel)
	// 標準出力は結果の表示に使うためログは標準エラーへ出す。
	zc.OutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build logger: %w", err)
	}
	return logger, nil
}
