package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/oxygene76/vector3/internal/config"
	"github.com/oxygene76/vector3/pkg/vector"
)

type jsonResult struct {
	Op     string      `json:"op"`
	Vector *jsonVector `json:"vector,omitempty"`
	Scalar *jsonFloat  `json:"scalar,omitempty"`
	Bool   *bool       `json:"bool,omitempty"`
}

type jsonVector struct {
	X jsonFloat `json:"X"`
	Y jsonFloat `json:"Y"`
	Z jsonFloat `json:"Z"`
}

func newJSONVector(v vector.Vector3) *jsonVector {
	return &jsonVector{X: jsonFloat(v.X), Y: jsonFloat(v.Y), Z: jsonFloat(v.Z)}
}

// jsonFloat encodes NaN and ±Inf as the strings "NaN", "+Inf" and "-Inf",
// which encoding/json rejects as numbers
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	x := float64(f)
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return json.Marshal(strconv.FormatFloat(x, 'g', -1, 64))
	}
	return json.Marshal(x)
}

func (f *jsonFloat) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*f = jsonFloat(x)
		return nil
	}
	var x float64
	if err := json.Unmarshal(data, &x); err != nil {
		return err
	}
	*f = jsonFloat(x)
	return nil
}

func printVector(w io.Writer, cfg *config.Config, op string, v vector.Vector3) error {
	if cfg.Output.Format == config.FormatJSON {
		return writeJSON(w, jsonResult{Op: op, Vector: newJSONVector(v)})
	}
	_, err := fmt.Fprintln(w, v.Format(cfg.Output.Precision))
	return err
}

func printScalar(w io.Writer, cfg *config.Config, op string, s float64) error {
	if cfg.Output.Format == config.FormatJSON {
		f := jsonFloat(s)
		return writeJSON(w, jsonResult{Op: op, Scalar: &f})
	}
	format := byte('f')
	if cfg.Output.Precision < 0 {
		format = 'g'
	}
	_, err := fmt.Fprintln(w, strconv.FormatFloat(s, format, cfg.Output.Precision, 64))
	return err
}

func printBool(w io.Writer, cfg *config.Config, op string, b bool) error {
	if cfg.Output.Format == config.FormatJSON {
		return writeJSON(w, jsonResult{Op: op, Bool: &b})
	}
	_, err := fmt.Fprintln(w, b)
	return err
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	return enc.Encode(v)
}
