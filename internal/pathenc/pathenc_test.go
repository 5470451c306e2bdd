package pathenc

import (
	"math"
	"math/rand"
	"regexp"
	"strconv"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geosvg/internal/geom"
)

// identity treats {lng, lat} as {x, y}.
type identity struct{}

func (identity) Project(p orb.Point) orb.Point { return p }

func (identity) Extremes(b orb.Bound) (orb.Point, orb.Point) {
	return orb.Point{b.Min[0], b.Max[1]}, orb.Point{b.Max[0], b.Min[1]}
}

func newTestEncoder(opts Options) *Encoder {
	return NewEncoder(identity{}, opts, 1, orb.Point{0, 0})
}

var tokenRe = regexp.MustCompile(`[mlhvz]|-?(?:\d+\.?\d*|\.\d+)`)

type command struct {
	op   byte
	args []float64
}

func parsePath(t *testing.T, d string) []command {
	t.Helper()
	var out []command
	for _, tok := range tokenRe.FindAllString(d, -1) {
		switch tok {
		case "m", "l", "h", "v", "z":
			out = append(out, command{op: tok[0]})
		default:
			require.NotEmpty(t, out, "number before command in %q", d)
			v, err := strconv.ParseFloat(tok, 64)
			require.NoError(t, err)
			out[len(out)-1].args = append(out[len(out)-1].args, v)
		}
	}
	return out
}

// lineTotal sums the written line displacements of one subpath.
func lineTotal(cmds []command) orb.Point {
	var sum orb.Point
	for _, c := range cmds {
		switch c.op {
		case 'l':
			sum[0] += c.args[0]
			sum[1] += c.args[1]
		case 'h':
			sum[0] += c.args[0]
		case 'v':
			sum[1] += c.args[0]
		}
	}
	return sum
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.5, ".5"},
		{-0.5, "-.5"},
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{12, "12"},
		{100, "100"},
		{-12.25, "-12.25"},
		{0.05, ".05"},
		{-0.05, "-.05"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.in))
		})
	}
}

func TestAppendShape(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		polygons []geom.Polygon
		want     string
	}{
		{
			name:     "triangle uses shorthand",
			opts:     DefaultOptions(),
			polygons: []geom.Polygon{{{10, 20}, {15, 20}, {15, 30}, {10, 20}}},
			want:     "m10 20h5v10z\n",
		},
		{
			name:     "diagonal step writes both axes",
			opts:     DefaultOptions(),
			polygons: []geom.Polygon{{{10, 20}, {13, 24}, {10, 25}, {10, 20}}},
			want:     "m10 20l3 4l-3 1z\n",
		},
		{
			name:     "move to origin is written as zero",
			opts:     DefaultOptions(),
			polygons: []geom.Polygon{{{0, 0}, {4, 0}, {4, 4}, {0, 0}}},
			want:     "m0 0h4v4z\n",
		},
		{
			name:     "repeated vertex is omitted",
			opts:     DefaultOptions(),
			polygons: []geom.Polygon{{{1, 1}, {1, 1}, {5, 1}, {1, 1}}},
			want:     "m1 1h4z\n",
		},
		{
			name:     "compact drops space before minus",
			opts:     Options{MinWritable: 0.5},
			polygons: []geom.Polygon{{{10, 20}, {7, 16}, {12, 22}, {10, 20}}},
			want:     "m10 20l-3-4l5 6z",
		},
		{
			name:     "exact writes fractions",
			opts:     Options{Exact: true, MinWritable: 0.5, Pretty: true},
			polygons: []geom.Polygon{{{0.5, 0.25}, {1, 1}, {1.25, 1}, {0.5, 0.25}}},
			want:     "m.5 .25l.5 .75h.25z\n",
		},
		{
			name:     "precision keeps one digit",
			opts:     Options{MinWritable: 0.05, Precision: 1, Pretty: true},
			polygons: []geom.Polygon{{{0, 0}, {0.25, 0.5}, {0, 0}}},
			want:     "m0 0l.2 .5z\n",
		},
		{
			name: "polygons chain from the previous move",
			opts: DefaultOptions(),
			polygons: []geom.Polygon{
				{{10, 10}, {12, 10}, {12, 12}, {10, 10}},
				{{30, 10}, {32, 10}, {32, 12}, {30, 10}},
			},
			want: "m10 10h2v2z\nm20 0h2v2z\n",
		},
		{
			name:     "empty polygon writes nothing",
			opts:     DefaultOptions(),
			polygons: []geom.Polygon{{}},
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newTestEncoder(tt.opts).Shape(tt.polygons))
		})
	}
}

func TestScaleAndOrigin(t *testing.T) {
	e := NewEncoder(identity{}, DefaultOptions(), 0.5, orb.Point{10, 10})
	got := e.Shape([]geom.Polygon{{{20, 30}, {24, 30}, {20, 30}}})
	assert.Equal(t, "m5 10h2z\n", got)
}

func TestSuppression(t *testing.T) {
	e := newTestEncoder(Options{MinWritable: 0.5})
	// x moves by 0.3 and must be written as 0 on that step
	got := e.Shape([]geom.Polygon{{{0, 0}, {0.3, 10}, {0.6, 20}, {0, 0}}})
	cmds := parsePath(t, got)
	require.Len(t, cmds, 4)
	assert.Equal(t, command{op: 'v', args: []float64{10}}, cmds[1])
	// the carried 0.3 plus the next 0.3 crosses the threshold and rounds to 1
	assert.Equal(t, command{op: 'l', args: []float64{1, 10}}, cmds[2])

	// a lower threshold lets the same move through once precision allows it
	e = newTestEncoder(Options{MinWritable: 0.2, Precision: 1})
	got = e.Shape([]geom.Polygon{{{0, 0}, {0.3, 10}, {0, 0}}})
	assert.Equal(t, "m0 0l.3 10z", got)
}

func TestCarryInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, opts := range []Options{
		{MinWritable: 0, Precision: 0},
		{MinWritable: 0.5, Precision: 0},
		{MinWritable: 2, Precision: 0},
		{MinWritable: 0.05, Precision: 1},
		{MinWritable: 0, Precision: 2},
		{Exact: true},
	} {
		e := newTestEncoder(opts)
		unit := 0.5 / math.Pow(10, float64(opts.Precision))
		bound := math.Max(unit, opts.MinWritable)
		if opts.Exact {
			bound = 0
		}

		for i := 0; i < 20; i++ {
			poly := make(geom.Polygon, 2+rng.Intn(200))
			for j := range poly {
				poly[j] = orb.Point{rng.Float64() * 50, rng.Float64() * 50}
			}

			b, _, carry := e.appendPolygon(nil, poly, orb.Point{0, 0})
			cmds := parsePath(t, string(b))
			require.Equal(t, byte('m'), cmds[0].op)
			written := lineTotal(cmds)
			written[0] += cmds[0].args[0]
			written[1] += cmds[0].args[1]
			// the cursor starts at the origin, so the exact total is the
			// position of the last vertex
			exact := poly[len(poly)-1]

			for axis := 0; axis < 2; axis++ {
				assert.InDelta(t, exact[axis]+carry[axis], written[axis], 1e-6)
				assert.LessOrEqual(t, math.Abs(carry[axis]), bound+1e-9)
			}
		}
	}
}

func TestCursorTracksWrittenMove(t *testing.T) {
	e := newTestEncoder(DefaultOptions())
	_, cursor, _ := e.appendPolygon(nil, geom.Polygon{{10.4, 20.6}, {15, 20}, {10.4, 20.6}}, orb.Point{0, 0})
	assert.Equal(t, orb.Point{10, 21}, cursor)
}
