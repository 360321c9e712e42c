// Package aoc are quick & dirty utilities for solving Advent of Code
// problems: a runner that checks each part against the sample embedded in
// its doc comment, an input downloader with a local cache, and a handful of
// containers and graph helpers shared by the solutions.
package aoc

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(funcName, comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		log.Debug().Str("func", funcName).Str("want", s.want).Msg("found sample")
		return s, true
	}
	var zero sample
	return zero, false
}

func extractSamples(src []byte) map[string]sample {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "main.go", src, parser.ParseComments)
	if err != nil {
		log.Fatal().Err(err).Msg("parsing source to extract samples")
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			s, ok := parseSample(funcName, c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[funcName] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples
}

// Puzzle is embedded by solver structs. Run fills it in before calling
// each part.
type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample
}

func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	return fileOrFetch(fmt.Sprintf("%d/%d.input", p.year, p.day.day), fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", p.year, p.day.day))
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0.
func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal().Err(err).Msg("scanning input")
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

func (p *Puzzle) Debug(v ...any) {
	log.Debug().Msg(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

// Debugf logs only while running the sample, real inputs are too noisy.
func (p *Puzzle) Debugf(format string, args ...any) {
	if p.SampleMode {
		log.Debug().Msgf(format, args...)
	}
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		log.Fatal().Msgf("no sample found for %v", p.solver.Name)
	}
	return sample
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

// extractMethods registers a struct with methods named D{day}p{part} for
// each day/part of Advent of Code. The methods must have the signature
// func() any.
func extractMethods(x any) map[int]day {
	rx := regexp.MustCompile(`^D(\d+)p(\d+.*)$`)
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		log.Fatal().Msgf("Register: got %T; want struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mt := vt.Method(i)
		mn := mt.Name
		matches := rx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m := v.Method(i).Interface().(func() any)
		day, part := matches[1], matches[2]
		d := Int(day)
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: part,
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
}

var initFlags = sync.OnceFunc(func() {
	flag.Parse()
	initLogging(os.Stderr, flagDebug)
})

func initLogging(w io.Writer, debug bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

// runDay runs every part of day, sample first. It reports false if a
// sample answer did not match.
func runDay(slvr any, year int, day day, samples map[string]sample) bool {
	p := Puzzle{
		year:    year,
		day:     day,
		samples: samples,
	}
	fmt.Println("Running day", day.day)
	sr := reflect.ValueOf(slvr)
	sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(&p))
	for _, ps := range day.parts {
		p.solver = ps
		if flagPart != "" && ps.Part != flagPart {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && flagOnlySample {
				continue
			} else if sm && flagSkipSample {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input.
				p.Input()
			}
			t0 := time.Now()
			got := ps.fn()
			if sm {
				sample := p.Sample()
				if fmt.Sprint(got) != sample.want {
					fmt.Printf("part %s: %v ❌; want %v\n", ps.Part, got, sample.want)
					return false
				}
				fmt.Printf("part %s sample: %v ✅ (%v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			} else {
				fmt.Printf("part %s: %v (took %v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			}
		}
	}
	return true
}

// Run runs the solutions registered on slvr, which must be a pointer to a
// struct embedding *Puzzle. src is the source of the file declaring the
// solutions; samples are read from its doc comments.
func Run(year int, src []byte, slvr any) {
	initFlags()
	samples := extractSamples(src)
	days := extractMethods(slvr)

	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			log.Fatal().Msgf("no day %d", flagCurDay)
		}
		if !runDay(slvr, year, day, samples) {
			os.Exit(1)
		}
		return
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	ok := true
	for _, day := range dayNums {
		ok = runDay(slvr, year, days[day], samples) && ok
		fmt.Println()
	}
	if !ok {
		os.Exit(1)
	}
}

const userAgent = "github.com/dylemma/aoc"

var session = sync.OnceValue(func() string {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg("loading .env")
	}
	if s := strings.TrimSpace(os.Getenv("AOC_SESSION")); s != "" {
		return s
	}
	return strings.TrimSpace(string(MustGet(os.ReadFile(filepath.Join(os.Getenv("HOME"), "keys", "aoc.session")))))
})

func request(method, url string, body io.Reader) *http.Request {
	req := MustGet(http.NewRequest(method, url, body))
	req.Header.Set("User-Agent", userAgent)
	req.AddCookie(&http.Cookie{Name: "session", Value: session()})
	return req
}

func doRequest(req *http.Request) *http.Response {
	res := MustGet(http.DefaultClient.Do(req))
	if res.StatusCode != http.StatusOK {
		res.Body.Close()
		log.Fatal().Str("url", req.URL.String()).Str("status", res.Status).Msg("bad status fetching")
	}
	return res
}

func fileOrFetch(filename, url string) []byte {
	if f, err := os.ReadFile(filename); err == nil {
		return f
	}

	log.Info().Str("file", filename).Msg("input not cached, downloading")
	body := fetch(url)
	MustDo(os.MkdirAll(filepath.Dir(filename), 0700))
	MustDo(os.WriteFile(filename, body, 0644))
	log.Info().Str("file", filename).Int("bytes", len(body)).Msg("download complete")
	return body
}

func fetch(url string) []byte {
	res := doRequest(request("GET", url, nil))
	defer res.Body.Close()
	return MustGet(io.ReadAll(res.Body))
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

// Parallel runs f on each element of in in its own goroutine and returns
// the results in input order.
func Parallel[I, O any](in []I, f func(I) O) []O {
	var wg sync.WaitGroup
	wg.Add(len(in))
	out := make([]O, len(in))
	for i, v := range in {
		go func(i int, v I) {
			defer wg.Done()
			out[i] = f(v)
		}(i, v)
	}
	wg.Wait()
	return out
}

func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}

func ParallelMapFold[A, B, C any](in []A, f func(A) B, f2 func(C, B) C, defVal C) C {
	return Fold(
		Parallel(in, f),
		f2,
		defVal,
	)
}
