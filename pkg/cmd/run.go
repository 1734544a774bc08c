package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/c9s/tastream/pkg/config"
	"github.com/c9s/tastream/pkg/datasource/csvsource"
	"github.com/c9s/tastream/pkg/indicator"
	"github.com/c9s/tastream/pkg/metrics"
	"github.com/c9s/tastream/pkg/service"
	"github.com/c9s/tastream/pkg/types"
)

func init() {
	RunCmd.Flags().String("config", "tastream.yaml", "config file")
	RunCmd.Flags().Bool("reset-state", false, "drop the persisted indicator state before running")
	RunCmd.Flags().Bool("no-save-state", false, "do not persist indicator state after running")
	RootCmd.AddCommand(RunCmd)
}

var RunCmd = &cobra.Command{
	Use:          "run",
	Short:        "stream csv klines through the configured indicators",
	SilenceUsage: true,
	RunE:         run,
}

// indicatorRunner adapts one configured indicator instance to the generic
// feed/report/persist loop of the run command.
type indicatorRunner struct {
	name     string
	instance interface{}
	feed     func(k types.KLine)
	report   func() string
}

func run(cmd *cobra.Command, args []string) error {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	resetState, err := cmd.Flags().GetBool("reset-state")
	if err != nil {
		return err
	}

	noSaveState, err := cmd.Flags().GetBool("no-save-state")
	if err != nil {
		return err
	}

	userConfig, err := config.Load(configFile)
	if err != nil {
		return err
	}

	runners, err := buildRunners(userConfig.Indicators)
	if err != nil {
		return err
	}

	persistence, err := newPersistenceService(userConfig.Persistence)
	if err != nil {
		return err
	}

	for _, r := range runners {
		store := persistence.NewStore("tastream", userConfig.Symbol, r.name)
		if resetState {
			if err := store.Reset(); err != nil {
				return errors.Wrapf(err, "can not reset state of %s", r.name)
			}
			continue
		}

		if err := store.Load(r.instance); err != nil {
			if errors.Is(err, service.ErrPersistenceNotExists) {
				continue
			}
			return errors.Wrapf(err, "can not restore state of %s", r.name)
		}

		log.Infof("restored state of %s", r.name)
	}

	if userConfig.MetricsBind != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(userConfig.MetricsBind, mux); err != nil {
				log.WithError(err).Errorf("metrics server error")
			}
		}()
		log.Infof("serving prometheus metrics on %s", userConfig.MetricsBind)
	}

	f, err := os.Open(userConfig.CSVFile)
	if err != nil {
		return errors.Wrapf(err, "can not open csv file %s", userConfig.CSVFile)
	}
	defer f.Close()

	reader := csvsource.NewCSVKLineReader(csv.NewReader(f))

	var numKLines int
	for {
		k, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrapf(err, "can not read kline #%d", numKLines+1)
		}

		for _, r := range runners {
			r.feed(k)
			metrics.IndicatorUpdatesMetrics.WithLabelValues(r.name).Inc()
		}

		numKLines++
		metrics.KLinesProcessedMetrics.WithLabelValues(userConfig.Symbol).Inc()
	}

	log.Infof("processed %d klines from %s", numKLines, userConfig.CSVFile)

	if !noSaveState {
		for _, r := range runners {
			store := persistence.NewStore("tastream", userConfig.Symbol, r.name)
			if err := store.Save(r.instance); err != nil {
				return errors.Wrapf(err, "can not save state of %s", r.name)
			}
		}
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Indicator", "Value"})
	for _, r := range runners {
		t.AppendRow(table.Row{r.name, r.report()})
	}
	t.Render()

	return nil
}

func newPersistenceService(cfg *config.PersistenceConfig) (service.PersistenceService, error) {
	if cfg == nil {
		return service.NewMemoryService(), nil
	}

	if cfg.Redis != nil {
		return service.NewRedisPersistenceService(cfg.Redis)
	}

	if cfg.Json != nil {
		return &service.JsonPersistenceService{Directory: cfg.Json.Directory}, nil
	}

	return service.NewMemoryService(), nil
}

func buildRunners(configs []config.IndicatorConfig) ([]*indicatorRunner, error) {
	var runners []*indicatorRunner
	for _, c := range configs {
		r, err := buildRunner(c)
		if err != nil {
			return nil, errors.Wrapf(err, "can not build indicator %s", c.Type)
		}

		runners = append(runners, r)
	}

	return runners, nil
}

func buildRunner(c config.IndicatorConfig) (*indicatorRunner, error) {
	switch c.Type {
	case config.IndicatorTypeSMA:
		inc, err := indicator.NewSMA(c.Window)
		if err != nil {
			return nil, err
		}
		return newCloseRunner(fmt.Sprintf("sma(%d)", c.Window), inc), nil

	case config.IndicatorTypeEWMA:
		inc, err := indicator.NewEWMA(c.Window)
		if err != nil {
			return nil, err
		}
		return newCloseRunner(fmt.Sprintf("ewma(%d)", c.Window), inc), nil

	case config.IndicatorTypeRMA:
		inc, err := indicator.NewRMA(c.Window)
		if err != nil {
			return nil, err
		}
		return newCloseRunner(fmt.Sprintf("rma(%d)", c.Window), inc), nil

	case config.IndicatorTypeStdDev:
		inc, err := indicator.NewStdDev(c.Window)
		if err != nil {
			return nil, err
		}
		return newCloseRunner(fmt.Sprintf("stddev(%d)", c.Window), inc), nil

	case config.IndicatorTypeROC:
		inc, err := indicator.NewROC(c.Window)
		if err != nil {
			return nil, err
		}
		return newCloseRunner(fmt.Sprintf("roc(%d)", c.Window), inc), nil

	case config.IndicatorTypeRSI:
		inc, err := indicator.NewRSI(c.Window)
		if err != nil {
			return nil, err
		}
		return newCloseRunner(fmt.Sprintf("rsi(%d)", c.Window), inc), nil

	case config.IndicatorTypeATR:
		inc, err := indicator.NewATR(c.Window)
		if err != nil {
			return nil, err
		}
		return &indicatorRunner{
			name:     fmt.Sprintf("atr(%d)", c.Window),
			instance: inc,
			feed:     func(k types.KLine) { inc.Update(k) },
			report:   func() string { return formatValue(inc.Last(0)) },
		}, nil

	case config.IndicatorTypeSTOCH:
		dWindow := c.DWindow
		if dWindow == 0 {
			dWindow = indicator.DefaultDWindow
		}
		inc, err := indicator.NewSTOCH(c.Window, dWindow)
		if err != nil {
			return nil, err
		}
		return &indicatorRunner{
			name:     fmt.Sprintf("stoch(%d,%d)", c.Window, dWindow),
			instance: inc,
			feed:     func(k types.KLine) { inc.Update(k) },
			report: func() string {
				return fmt.Sprintf("k=%s d=%s", formatValue(inc.LastK()), formatValue(inc.LastD()))
			},
		}, nil

	case config.IndicatorTypeMACD:
		inc, err := indicator.NewMACD(c.ShortWindow, c.LongWindow, c.SignalWindow)
		if err != nil {
			return nil, err
		}
		return &indicatorRunner{
			name:     fmt.Sprintf("macd(%d,%d,%d)", c.ShortWindow, c.LongWindow, c.SignalWindow),
			instance: inc,
			feed:     func(k types.KLine) { inc.PushK(k) },
			report: func() string {
				return fmt.Sprintf("macd=%s signal=%s histogram=%s",
					formatValue(inc.Last(0)),
					formatValue(inc.SignalLine.Last(0)),
					formatValue(inc.Histogram.Last(0)))
			},
		}, nil

	case config.IndicatorTypeBOLL:
		bandWidth := c.BandWidth
		if bandWidth == 0 {
			bandWidth = indicator.DefaultBollingerK
		}
		inc, err := indicator.NewBOLL(c.Window, bandWidth)
		if err != nil {
			return nil, err
		}
		return &indicatorRunner{
			name:     fmt.Sprintf("boll(%d,%s)", c.Window, formatValue(bandWidth)),
			instance: inc,
			feed:     func(k types.KLine) { inc.PushK(k) },
			report: func() string {
				return fmt.Sprintf("up=%s sma=%s down=%s",
					formatValue(inc.LastUpBand()), formatValue(inc.LastSMA()), formatValue(inc.LastDownBand()))
			},
		}, nil

	case config.IndicatorTypeDMI:
		adxSmoothing := c.ADXSmoothing
		if adxSmoothing == 0 {
			adxSmoothing = c.Window
		}
		inc, err := indicator.NewDMI(c.Window, adxSmoothing)
		if err != nil {
			return nil, err
		}
		return &indicatorRunner{
			name:     fmt.Sprintf("dmi(%d,%d)", c.Window, adxSmoothing),
			instance: inc,
			feed:     func(k types.KLine) { inc.Update(k) },
			report: func() string {
				return fmt.Sprintf("di+=%s di-=%s adx=%s",
					formatValue(inc.LastDIPlus()), formatValue(inc.LastDIMinus()), formatValue(inc.LastADX()))
			},
		}, nil
	}

	return nil, errors.Errorf("unsupported indicator type: %s", c.Type)
}

// float64Indicator is the shape shared by all close-price indicators.
type float64Indicator interface {
	PushK(k types.ClosePricer) float64
	Last(i int) float64
}

func newCloseRunner(name string, inc float64Indicator) *indicatorRunner {
	return &indicatorRunner{
		name:     name,
		instance: inc,
		feed:     func(k types.KLine) { inc.PushK(k) },
		report:   func() string { return formatValue(inc.Last(0)) },
	}
}

func formatValue(v float64) string {
	return fmt.Sprintf("%.4f", v)
}
