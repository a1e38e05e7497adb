package flightparser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/Flightx/pkg/datastructure"
	"github.com/lintang-b-s/Flightx/pkg/util"
	"go.uber.org/zap"
)

var (
	ErrMissingColumn = errors.New("missing required csv column")
	ErrEmptyDataset  = errors.New("dataset has no header row")
)

type FlightParser struct{}

func NewFlightParser() *FlightParser {
	return &FlightParser{}
}

// Parse reads a flight routes csv file (optionally .bz2 compressed) and builds the airport graph.
func (p *FlightParser) Parse(path string, log *zap.Logger) (*datastructure.Graph, error) {
	log.Info("Reading flight routes dataset", zap.String("path", path))

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(strings.ToLower(path), ".bz2") {
		bz, err := bzip2.NewReader(f, nil)
		if err != nil {
			return nil, fmt.Errorf("open bzip2 stream %s: %w", path, err)
		}
		defer bz.Close()
		r = bz
	}

	return p.ParseReader(r, log)
}

func (p *FlightParser) ParseReader(r io.Reader, log *zap.Logger) (*datastructure.Graph, error) {
	records, stats, err := p.ReadRecords(r)
	if err != nil {
		return nil, err
	}
	if stats.MalformedRows > 0 || stats.SelfLoops > 0 {
		log.Warn("Skipped flight routes rows",
			zap.Int("malformed", stats.MalformedRows),
			zap.Int("self_loops", stats.SelfLoops))
	}

	graph := BuildGraph(records)
	log.Info("Flight routes graph built",
		zap.Int("rows", stats.Rows),
		zap.Int("accepted", stats.Accepted),
		zap.Int("airports", graph.NumberOfVertices()),
		zap.Int("routes", graph.NumberOfEdges()))
	return graph, nil
}

// ReadRecords decodes csv rows into route records. rows with missing codes, unparsable coordinates
// or identical endpoints are skipped and counted in Stats.
func (p *FlightParser) ReadRecords(r io.Reader) ([]RouteRecord, Stats, error) {
	var stats Stats

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, stats, ErrEmptyDataset
	}
	if err != nil {
		return nil, stats, fmt.Errorf("read csv header: %w", err)
	}

	columns, err := indexColumns(header)
	if err != nil {
		return nil, stats, err
	}

	records := make([]RouteRecord, 0, 1024)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		stats.Rows++
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				stats.MalformedRows++
				continue
			}
			return nil, stats, fmt.Errorf("read csv row %d: %w", stats.Rows, err)
		}

		record, ok := columns.decode(row)
		if !ok {
			stats.MalformedRows++
			continue
		}
		if record.Source.Code == record.Destination.Code {
			stats.SelfLoops++
			continue
		}

		records = append(records, record)
		stats.Accepted++
	}

	return records, stats, nil
}

type columnIndex map[string]int

func indexColumns(header []string) (columnIndex, error) {
	columns := make(columnIndex, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, ok := columns[name]; !ok {
			columns[name] = i
		}
	}
	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, required)
		}
	}
	return columns, nil
}

func (c columnIndex) field(row []string, name string) string {
	i := c[name]
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (c columnIndex) airport(row []string, code, name, city, country, lat, lon string) (AirportRecord, bool) {
	airport := AirportRecord{
		Code:    util.NormalizeCode(c.field(row, code)),
		Name:    c.field(row, name),
		City:    c.field(row, city),
		Country: c.field(row, country),
	}
	if airport.Code == "" {
		return AirportRecord{}, false
	}

	var err error
	airport.Lat, err = strconv.ParseFloat(c.field(row, lat), 64)
	if err != nil {
		return AirportRecord{}, false
	}
	airport.Lon, err = strconv.ParseFloat(c.field(row, lon), 64)
	if err != nil {
		return AirportRecord{}, false
	}
	return airport, true
}

func (c columnIndex) decode(row []string) (RouteRecord, bool) {
	source, ok := c.airport(row, sourceCodeColumn, sourceNameColumn, sourceCityColumn, sourceCountryColumn,
		sourceLatColumn, sourceLonColumn)
	if !ok {
		return RouteRecord{}, false
	}
	dest, ok := c.airport(row, destCodeColumn, destNameColumn, destCityColumn, destCountryColumn,
		destLatColumn, destLonColumn)
	if !ok {
		return RouteRecord{}, false
	}
	return RouteRecord{Source: source, Destination: dest}, true
}
