package engine

import (
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/piwi3910/toolbox/internal/model"
)

// DefaultScanStep is the lateral offset increment used when searching for a
// free position on a sheet (1 cm).
const DefaultScanStep = 0.01

// MaxPieces bounds the number of pieces a single layout may split into.
// Placement time grows with the square of the piece count.
const MaxPieces = 10000

// epsilon absorbs float noise when comparing lengths in meters.
const epsilon = 1e-9

// Optimizer lays out roll cuts with a greedy first-fit decreasing scan.
type Optimizer struct {
	Roll     model.RollConfig
	ScanStep float64
	logger   *zap.Logger
}

// Option configures an Optimizer.
type Option func(*Optimizer)

// WithScanStep overrides the lateral scan step in meters. Non-positive
// values are ignored.
func WithScanStep(step float64) Option {
	return func(o *Optimizer) {
		if model.IsPositive(step) {
			o.ScanStep = step
		}
	}
}

// WithLogger attaches a logger used for debug tracing of placements.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Optimizer) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New creates an Optimizer for the given roll.
func New(roll model.RollConfig, opts ...Option) *Optimizer {
	o := &Optimizer{
		Roll:     roll,
		ScanStep: DefaultScanStep,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Optimize lays out cuts on the given roll with default options.
func Optimize(cuts []model.CutRequest, roll model.RollConfig) (model.OptimizationResult, error) {
	return New(roll).Optimize(cuts)
}

// Optimize validates the cuts, splits them into pieces, and places every
// piece on the first sheet and smallest lateral offset where it fits.
// A new sheet is opened when no existing sheet admits a piece, so every
// valid request is placed completely.
func (o *Optimizer) Optimize(cuts []model.CutRequest) (model.OptimizationResult, error) {
	if err := Validate(cuts, o.Roll); err != nil {
		return model.OptimizationResult{}, err
	}

	pieces := SplitCuts(cuts, o.Roll.MaxPieceLengthM)
	sortByWidth(pieces)

	var sheets []model.Sheet
	for _, piece := range pieces {
		placed := false
		for i := range sheets {
			if x, y, ok := o.findPosition(sheets[i], piece); ok {
				place(&sheets[i], piece, x, y)
				placed = true
				break
			}
		}
		if !placed {
			sheets = append(sheets, model.Sheet{})
			place(&sheets[len(sheets)-1], piece, 0, 0)
			o.logger.Debug("opened sheet",
				zap.Int("sheet", len(sheets)),
				zap.String("cut_id", piece.SourceCutID),
				zap.Float64("width", piece.Width),
				zap.Float64("length", piece.Length),
			)
		}
	}

	result := buildResult(o.Roll, sheets)
	o.logger.Debug("optimization finished",
		zap.Int("cuts", len(cuts)),
		zap.Int("pieces", len(pieces)),
		zap.Int("sheets", len(result.Sheets)),
		zap.Float64("waste_percent", result.WastePercent),
	)
	return result, nil
}

// Validate checks the roll and cut list before optimizing. Every failure is
// a *model.ValidationError.
func Validate(cuts []model.CutRequest, roll model.RollConfig) error {
	if len(cuts) == 0 {
		return model.NewValidationError("", "no cuts to optimize")
	}
	if !model.IsPositive(roll.WidthM) {
		return model.NewValidationError("roll_width", "must be greater than zero")
	}
	if !model.IsPositive(roll.LengthM) {
		return model.NewValidationError("roll_length", "must be greater than zero")
	}
	if !model.IsPositive(roll.MaxPieceLengthM) {
		return model.NewValidationError("max_length", "must be greater than zero")
	}
	if math.IsNaN(roll.PricePerSquareMeter) || math.IsInf(roll.PricePerSquareMeter, 0) || roll.PricePerSquareMeter < 0 {
		return model.NewValidationError("price_per_m2", "must not be negative")
	}

	for _, c := range cuts {
		if !model.IsPositive(c.Width) || !model.IsPositive(c.Length) {
			return model.NewValidationError("cuts", "%s: width and length must be greater than zero", c.DisplayLabel())
		}
		if c.Width > roll.WidthM+epsilon {
			return model.NewValidationError("cuts", "%s: width %s cm exceeds roll width %s cm",
				c.DisplayLabel(),
				model.FormatNumber(model.MetersToCentimeters(c.Width), 1),
				model.FormatNumber(model.MetersToCentimeters(roll.WidthM), 1))
		}
		if math.Min(c.Length, roll.MaxPieceLengthM) > roll.LengthM+epsilon {
			return model.NewValidationError("cuts", "%s: piece length %s m exceeds roll length %s m",
				c.DisplayLabel(),
				model.FormatNumber(math.Min(c.Length, roll.MaxPieceLengthM), 2),
				model.FormatNumber(roll.LengthM, 2))
		}
	}

	if n := countPieces(cuts, roll.MaxPieceLengthM); n > MaxPieces {
		return model.NewValidationError("cuts", "layout needs more than %d pieces; raise the max piece length or split the job", MaxPieces)
	}
	return nil
}

// countPieces returns how many pieces SplitCuts would produce, stopping
// early once MaxPieces is exceeded.
func countPieces(cuts []model.CutRequest, maxLength float64) int {
	total := 0
	for _, c := range cuts {
		n := math.Ceil(c.Length/maxLength - epsilon)
		if n < 1 {
			n = 1
		}
		if n > MaxPieces {
			return MaxPieces + 1
		}
		total += int(n)
		if total > MaxPieces {
			return total
		}
	}
	return total
}

// SplitCut decomposes a cut into pieces of at most maxLength. The last
// piece carries the remainder, computed once so the piece lengths add up
// to the cut length.
func SplitCut(c model.CutRequest, maxLength float64) []model.Piece {
	newPiece := func(length float64) model.Piece {
		return model.Piece{
			SourceCutID: c.ID,
			Width:       c.Width,
			Length:      length,
			ColorTag:    c.ColorTag,
			Label:       c.Label,
		}
	}

	var pieces []model.Piece
	full := 0
	for c.Length-float64(full)*maxLength > maxLength+epsilon {
		pieces = append(pieces, newPiece(maxLength))
		full++
	}
	return append(pieces, newPiece(c.Length-float64(full)*maxLength))
}

// SplitCuts splits all cuts, keeping the request order.
func SplitCuts(cuts []model.CutRequest, maxLength float64) []model.Piece {
	var pieces []model.Piece
	for _, c := range cuts {
		pieces = append(pieces, SplitCut(c, maxLength)...)
	}
	return pieces
}

// sortByWidth orders pieces widest first; equal widths keep request order.
func sortByWidth(pieces []model.Piece) {
	sort.SliceStable(pieces, func(i, j int) bool {
		return pieces[i].Width > pieces[j].Width
	})
}

// findPosition scans lateral offsets from the left edge and returns the
// first one where the piece fits on top of everything below it.
func (o *Optimizer) findPosition(sheet model.Sheet, piece model.Piece) (float64, float64, bool) {
	steps := int(math.Floor((o.Roll.WidthM-piece.Width)/o.ScanStep + epsilon))
	for i := 0; i <= steps; i++ {
		x := float64(i) * o.ScanStep
		y := maxYAt(sheet.Placements, x, piece.Width)
		if y+piece.Length <= o.Roll.LengthM+epsilon {
			return x, y, true
		}
	}
	return 0, 0, false
}

// maxYAt returns the deepest end of all placements whose lateral span
// overlaps [x, x+width).
func maxYAt(placements []model.Placement, x, width float64) float64 {
	var maxY float64
	for _, p := range placements {
		if x < p.Right()-epsilon && x+width > p.X+epsilon {
			maxY = math.Max(maxY, p.Bottom())
		}
	}
	return maxY
}

func place(sheet *model.Sheet, piece model.Piece, x, y float64) {
	sheet.Placements = append(sheet.Placements, model.Placement{
		SourceCutID: piece.SourceCutID,
		Width:       piece.Width,
		Length:      piece.Length,
		X:           x,
		Y:           y,
		ColorTag:    piece.ColorTag,
		Label:       piece.Label,
	})
	sheet.UsedLength = math.Max(sheet.UsedLength, y+piece.Length)
}

// buildResult fills in the per-sheet and aggregate area metrics.
func buildResult(roll model.RollConfig, sheets []model.Sheet) model.OptimizationResult {
	result := model.OptimizationResult{Roll: roll, Sheets: sheets}
	for i := range result.Sheets {
		s := &result.Sheets[i]
		s.UsedArea = 0
		for _, p := range s.Placements {
			s.UsedArea += p.Area()
		}
		s.ConsumedArea = roll.WidthM * s.UsedLength
		s.WasteArea = math.Max(0, s.ConsumedArea-s.UsedArea)

		result.TotalUsedArea += s.UsedArea
		result.TotalConsumedArea += s.ConsumedArea
		result.TotalWasteArea += s.WasteArea
	}
	if result.TotalConsumedArea > 0 {
		result.WastePercent = result.TotalWasteArea / result.TotalConsumedArea * 100.0
	}
	result.TotalMaterialCost = result.TotalConsumedArea * roll.PricePerSquareMeter
	return result
}
