// Command chromad serves the chroma library over a small JSON HTTP API.
//
//	GET /v1/convert?color=%23ff8800&to=lab
//	GET /v1/diff?a=%23ff8800&b=%23ff9900&metric=de2000
//	GET /v1/palette?kind=sequential&h=240&n=8
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gogpu/chroma"
)

func main() {
	var (
		addr    = flag.String("addr", ":8080", "listen address")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	chroma.SetLogger(logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/v1/convert", handleConvert)
	r.Get("/v1/diff", handleDiff)
	r.Get("/v1/palette", handlePalette)

	logger.Info("listening", "addr", *addr)
	if err := http.ListenAndServe(*addr, r); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// handleConvert parses ?color and returns its coordinates in the
// space named by ?to (default "rgb").
func handleConvert(w http.ResponseWriter, r *http.Request) {
	c, err := chroma.ParseColor(r.URL.Query().Get("color"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	to := r.URL.Query().Get("to")
	if to == "" {
		to = "rgb"
	}
	out, err := convertTo(c, to)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"space": to, "color": out})
}

func convertTo(c chroma.Color, space string) (any, error) {
	switch space {
	case "rgb":
		rgb := chroma.ToRGB(c)
		return map[string]any{"r": rgb.R, "g": rgb.G, "b": rgb.B, "hex": rgb.Hex()}, nil
	case "hsv":
		v := chroma.ToHSV(c)
		return map[string]float64{"h": v.H, "s": v.S, "v": v.V}, nil
	case "hsl":
		v := chroma.ToHSL(c)
		return map[string]float64{"h": v.H, "s": v.S, "l": v.L}, nil
	case "xyz":
		v := chroma.ToXYZ(c)
		return map[string]float64{"x": v.X, "y": v.Y, "z": v.Z}, nil
	case "lab":
		v := chroma.ToLab(c)
		return map[string]float64{"l": v.L, "a": v.A, "b": v.B}, nil
	case "luv":
		v := chroma.ToLuv(c)
		return map[string]float64{"l": v.L, "u": v.U, "v": v.V}, nil
	case "lchab":
		v := chroma.ToLCHab(c)
		return map[string]float64{"l": v.L, "c": v.C, "h": v.H}, nil
	case "lchuv":
		v := chroma.ToLCHuv(c)
		return map[string]float64{"l": v.L, "c": v.C, "h": v.H}, nil
	case "din99":
		v := chroma.ToDIN99(c)
		return map[string]float64{"l": v.L, "a": v.A, "b": v.B}, nil
	case "din99o":
		v := chroma.ToDIN99o(c)
		return map[string]float64{"l": v.L, "a": v.A, "b": v.B}, nil
	case "lms":
		v := chroma.ToLMS(c)
		return map[string]float64{"l": v.L, "m": v.M, "s": v.S}, nil
	default:
		return nil, fmt.Errorf("unknown color space %q", space)
	}
}

// handleDiff computes the perceptual distance between ?a and ?b under
// the metric named by ?metric (default "de2000").
func handleDiff(w http.ResponseWriter, r *http.Request) {
	a, err := chroma.ParseColor(r.URL.Query().Get("a"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("a: %w", err))
		return
	}
	b, err := chroma.ParseColor(r.URL.Query().Get("b"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("b: %w", err))
		return
	}

	name := r.URL.Query().Get("metric")
	if name == "" {
		name = "de2000"
	}
	m, err := metricByName(name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"metric":   name,
		"distance": chroma.ColorDiff(a, b, m),
	})
}

func metricByName(name string) (chroma.Metric, error) {
	switch name {
	case "de2000":
		return chroma.DE2000(), nil
	case "de94":
		return chroma.DE94(), nil
	case "de94-textiles":
		return chroma.DE94Textiles(), nil
	case "cmc":
		return chroma.DECMC(1, 1), nil
	case "bfd":
		return chroma.DEBFD(), nil
	case "jpc79":
		return chroma.DEJPC79(), nil
	case "ab":
		return chroma.DEAB(), nil
	case "din99":
		return chroma.DEDIN99(), nil
	case "din99d":
		return chroma.DEDIN99d(), nil
	case "din99o":
		return chroma.DEDIN99o(), nil
	default:
		return chroma.Metric{}, fmt.Errorf("unknown metric %q", name)
	}
}

// handlePalette generates a palette of hex colors. Kinds: sequential,
// diverging, distinguishable, colormap.
func handlePalette(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	n := 8
	if s := q.Get("n"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("n: %w", err))
			return
		}
		n = v
	}

	kind := q.Get("kind")
	if kind == "" {
		kind = "sequential"
	}

	var (
		pal []chroma.RGB
		err error
	)
	switch kind {
	case "sequential":
		h := 240.0
		if s := q.Get("h"); s != "" {
			if h, err = strconv.ParseFloat(s, 64); err != nil {
				writeError(w, http.StatusBadRequest, fmt.Errorf("h: %w", err))
				return
			}
		}
		pal = chroma.SequentialPalette(h, n)
	case "diverging":
		h1, h2 := 0.0, 240.0
		if s := q.Get("h1"); s != "" {
			if h1, err = strconv.ParseFloat(s, 64); err != nil {
				writeError(w, http.StatusBadRequest, fmt.Errorf("h1: %w", err))
				return
			}
		}
		if s := q.Get("h2"); s != "" {
			if h2, err = strconv.ParseFloat(s, 64); err != nil {
				writeError(w, http.StatusBadRequest, fmt.Errorf("h2: %w", err))
				return
			}
		}
		pal = chroma.DivergingPalette(h1, h2, n)
	case "distinguishable":
		pal, err = chroma.DistinguishableColors(n, nil)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	case "colormap":
		pal, err = chroma.Colormap(q.Get("name"), n)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	default:
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown palette kind %q", kind))
		return
	}

	hex := make([]string, len(pal))
	for i, c := range pal {
		hex[i] = c.Hex()
	}
	writeJSON(w, http.StatusOK, map[string]any{"kind": kind, "colors": hex})
}
