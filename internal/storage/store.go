package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/rigidsim/internal/collision"
	"github.com/san-kum/rigidsim/internal/phys"
	"github.com/san-kum/rigidsim/internal/world"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Scenario  string             `json:"scenario"`
	Timestamp time.Time          `json:"timestamp"`
	Dt        float64            `json:"dt"`
	Steps     int                `json:"steps"`
	Bodies    int                `json:"bodies"`
	Metrics   map[string]float64 `json:"metrics"`
}

type row struct {
	step int
	t    float64
	id   phys.ID
	pos  [3]float64
	vel  [3]float64
}

// Recorder is an engine observer that buffers one row per body per step
// for later persistence.
type Recorder struct {
	rows   []row
	bodies map[phys.ID]struct{}
}

func NewRecorder() *Recorder {
	return &Recorder{bodies: make(map[phys.ID]struct{})}
}

func (r *Recorder) OnStep(step int, t float64, items []world.Item, contacts []collision.Contact) {
	for _, it := range items {
		b := it.Body
		r.bodies[it.ID] = struct{}{}
		r.rows = append(r.rows, row{
			step: step,
			t:    t,
			id:   it.ID,
			pos:  [3]float64{b.Position.X(), b.Position.Y(), b.Position.Z()},
			vel:  [3]float64{b.Velocity.X(), b.Velocity.Y(), b.Velocity.Z()},
		})
	}
}

func (r *Recorder) Steps() int {
	if len(r.rows) == 0 {
		return 0
	}
	return r.rows[len(r.rows)-1].step
}

// Save writes one run directory: metadata.json plus states.csv with a row
// per body per step. Returns the run ID.
func (s *Store) Save(scenario string, dt float64, metrics map[string]float64, rec *Recorder) (string, error) {
	runID := fmt.Sprintf("%s_%d", scenario, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Scenario:  scenario,
		Timestamp: time.Now(),
		Dt:        dt,
		Steps:     rec.Steps(),
		Bodies:    len(rec.bodies),
		Metrics:   metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "states.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"step", "t", "id", "px", "py", "pz", "vx", "vy", "vz"}); err != nil {
		return "", err
	}
	for _, r := range rec.rows {
		record := []string{
			strconv.Itoa(r.step),
			strconv.FormatFloat(r.t, 'g', -1, 64),
			strconv.FormatInt(int64(r.id), 10),
			strconv.FormatFloat(r.pos[0], 'g', -1, 64),
			strconv.FormatFloat(r.pos[1], 'g', -1, 64),
			strconv.FormatFloat(r.pos[2], 'g', -1, 64),
			strconv.FormatFloat(r.vel[0], 'g', -1, 64),
			strconv.FormatFloat(r.vel[1], 'g', -1, 64),
			strconv.FormatFloat(r.vel[2], 'g', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, e.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

// Series axes for LoadSeries.
const (
	AxisPX = iota
	AxisPY
	AxisPZ
	AxisVX
	AxisVY
	AxisVZ
)

// LoadSeries extracts one body's position or velocity component over the
// run, ordered by step.
func (s *Store) LoadSeries(runID string, bodyID phys.ID, axis int) ([]float64, error) {
	if axis < AxisPX || axis > AxisVZ {
		return nil, fmt.Errorf("axis out of range: %d", axis)
	}
	f, err := os.Open(filepath.Join(s.baseDir, runID, "states.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	var series []float64
	for i, rec := range records {
		if i == 0 || len(rec) < 9 {
			continue
		}
		id, err := strconv.ParseInt(rec[2], 10, 64)
		if err != nil || phys.ID(id) != bodyID {
			continue
		}
		v, err := strconv.ParseFloat(rec[3+axis], 64)
		if err != nil {
			return nil, fmt.Errorf("bad value at line %d: %w", i+1, err)
		}
		series = append(series, v)
	}
	return series, nil
}
