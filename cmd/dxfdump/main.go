// Command dxfdump 读取 DXF 文件并输出表、块、实体统计以及读取过程中的诊断。
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/zooyer/dxfreader"
	"github.com/zooyer/dxfreader/config"
	"github.com/zooyer/golib/xos"
)

// 没有参数时弹出文件选择框，结束后暂停等待按键
var pause bool

var rootCmd = &cobra.Command{
	Use:   "dxfdump [files|globs...]",
	Short: "Dump tables, blocks, entities and diagnostics of DXF files",
	Long: `dxfdump reads DXF files and prints what was read: table records, block
definitions, entity counts, block references with their attributes,
dimensions with their displayed value and every diagnostic raised while reading.

Examples:
  dxfdump plan.dxf                       # text report on stdout
  dxfdump -f yaml -o report.yaml "**/*.dxf"
  DXFDUMP_CODEPAGE=ANSI_936 dxfdump old.dxf`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringP("format", "f", formatText, "Output format: text, yaml, msgpack")
	flags.StringP("output", "o", "", "Output file (default: stdout)")
	flags.Bool("failsafe", true, "Report invalid values as diagnostics instead of failing")
	flags.String("codepage", "", "Code page of the input, e.g. ANSI_936")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.String("config", ".", "Directory containing dxfreader.yaml")

	cobra.CheckErr(viper.BindPFlags(flags))
	viper.SetEnvPrefix("DXFDUMP")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func main() {
	err := rootCmd.Execute()
	if pause {
		xos.PauseExit()
	}
	if err != nil {
		os.Exit(1)
	}
}

// configuration 配置文件打底，命令行参数和环境变量覆盖
func configuration() *config.Configuration {
	cfg := config.LoadOrDefault(viper.GetString("config"))

	if viper.IsSet("failsafe") {
		cfg.Failsafe = viper.GetBool("failsafe")
	}
	if viper.IsSet("codepage") {
		cfg.CodePage = viper.GetString("codepage")
	}
	if viper.IsSet("log-level") {
		cfg.LogLevel = viper.GetString("log-level")
	}

	return cfg
}

func selectFiles() ([]string, error) {
	files, err := zenity.SelectFileMultiple(
		zenity.Title("选择 DXF 文件"),
		zenity.FileFilter{Name: "DXF 文件", Patterns: []string{"*.dxf"}, CaseFold: true},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return nil, errors.New("请拖入DXF文件，或在命令行中指定文件")
	}

	return files, err
}

func run(cmd *cobra.Command, args []string) error {
	var (
		cfg    = configuration()
		format = viper.GetString("format")
		output = viper.GetString("output")
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	)

	files, err := expand(args)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		pause = true
		if files, err = selectFiles(); err != nil {
			return err
		}
		if len(files) > 0 && output == "" {
			output = reportName(files[0], format)
		}
	}
	if len(files) == 0 {
		return errors.New("no dxf files matched")
	}

	var out io.Writer = cmd.OutOrStdout()
	if output != "" {
		if err = truncate(output); err != nil {
			return err
		}
	}

	var failed int
	for i, file := range files {
		fmt.Fprintf(cmd.ErrOrStderr(), "正在读取[%d/%d]: %s\n", i+1, len(files), file)

		doc, err := dxf.Open(file, dxf.WithConfig(cfg), dxf.WithLogger(logger))
		if err != nil {
			logger.Error("read dxf failed", "file", file, "err", err)
			failed++
			continue
		}

		var buf bytes.Buffer
		if err = NewReport(file, doc).Encode(&buf, format); err != nil {
			return err
		}

		if output == "" {
			if _, err = out.Write(buf.Bytes()); err != nil {
				return err
			}
			continue
		}
		if err = xos.AppendFile(output, buf.Bytes(), 0644); err != nil {
			return err
		}
	}

	if output != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "报告已写入: %s\n", output)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(files))
	}

	return nil
}
