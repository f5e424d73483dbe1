package pipeline

import (
	"io"
	"time"

	log "github.com/sirupsen/logrus"

	"buynow-compare/internal/backtest"
	"buynow-compare/internal/config"
	"buynow-compare/internal/domain"
	"buynow-compare/internal/metrics"
	"buynow-compare/internal/observability"
	"buynow-compare/internal/reporting"
)

// Comparison is the result of one buyNow comparison run.
type Comparison struct {
	File   *domain.BacktestFile
	BuyNow domain.Summary
	Other  domain.Summary
	Delta  domain.Delta

	// Rejections counts ignored values by field path across both groups.
	Rejections map[string]int
	Report     *reporting.Report
}

// ComparePipeline orchestrates load, partition, aggregation and rendering.
type ComparePipeline struct {
	cfg       config.Config
	logger    *log.Logger
	metrics   *observability.Metrics // optional
	reportGen *reporting.Generator
	clock     func() time.Time
}

// NewComparePipeline creates a new pipeline.
func NewComparePipeline(cfg config.Config, logger *log.Logger) *ComparePipeline {
	return &ComparePipeline{
		cfg:       cfg,
		logger:    logger,
		reportGen: reporting.NewGenerator(reporting.TitlesFromConfig(cfg)),
		clock:     func() time.Time { return time.Now().UTC() },
	}
}

// WithMetrics records run metrics into m.
func (p *ComparePipeline) WithMetrics(m *observability.Metrics) *ComparePipeline {
	p.metrics = m
	return p
}

// WithClock sets a custom clock function for deterministic metrics.
func (p *ComparePipeline) WithClock(clock func() time.Time) *ComparePipeline {
	p.clock = clock
	return p
}

// Run loads the backtest file at path, writes the report to w and returns
// the comparison. Errors wrap the backtest package sentinels for input
// problems; malformed event fields never fail a run.
func (p *ComparePipeline) Run(path string, w io.Writer) (*Comparison, error) {
	start := p.clock()

	cmp, err := p.run(path, w)

	if p.metrics != nil {
		status := observability.StatusSuccess
		if err != nil {
			status = observability.StatusFailure
		}
		end := p.clock()
		p.metrics.RecordRun(status, end.Sub(start).Seconds(), end.Unix())
	}
	return cmp, err
}

func (p *ComparePipeline) run(path string, w io.Writer) (*Comparison, error) {
	file, err := backtest.Load(path)
	if err != nil {
		return nil, err
	}
	p.logger.WithFields(log.Fields{"path": path, "events": len(file.Events)}).Debug("backtest loaded")

	cmp := p.Compare(file)

	if err := reporting.Render(w, cmp.Report, p.cfg.Format, p.cfg.Precision); err != nil {
		return nil, err
	}
	return cmp, nil
}

// Compare partitions and summarizes an already loaded file.
func (p *ComparePipeline) Compare(file *domain.BacktestFile) *Comparison {
	buyNowEvents, otherEvents := backtest.Partition(file.Events)

	agg := metrics.NewAggregator()
	buyNow := agg.Summarize(buyNowEvents)
	other := agg.Summarize(otherEvents)
	delta := metrics.ComputeDelta(buyNow, other)

	p.logger.WithFields(log.Fields{
		"buy_now": buyNow.N,
		"other":   other.N,
	}).Debug("events partitioned")

	dataQuality := agg.RejectionErrors()
	for _, msg := range dataQuality {
		p.logger.Warn(msg)
	}

	if p.metrics != nil {
		p.metrics.RecordEvents(len(file.Events))
		p.metrics.RecordGroup(domain.GroupBuyNow, buyNow)
		p.metrics.RecordGroup(domain.GroupOther, other)
		p.metrics.RecordRejections(agg.Rejections)
	}

	return &Comparison{
		File:       file,
		BuyNow:     buyNow,
		Other:      other,
		Delta:      delta,
		Rejections: agg.Rejections,
		Report:     p.reportGen.Generate(file, buyNow, other, delta, dataQuality),
	}
}
