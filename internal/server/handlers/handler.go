package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/piwi3910/toolbox/internal/engine"
	"github.com/piwi3910/toolbox/internal/export"
	"github.com/piwi3910/toolbox/internal/importer"
	"github.com/piwi3910/toolbox/internal/model"
	"github.com/piwi3910/toolbox/internal/project"
)

// maxUploadBytes limits imported cut list files.
const maxUploadBytes = 10 << 20

// Handler serves the roll optimizer HTTP API.
type Handler struct {
	store    project.Store
	catalog  model.MaterialCatalog
	currency string
	logger   *zap.Logger
}

// New constructs the HTTP handler adapter.
func New(store project.Store, catalog model.MaterialCatalog, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	useJSONFieldNames()
	return &Handler{
		store:    store,
		catalog:  catalog,
		currency: model.DefaultAppConfig().CurrencySymbol,
		logger:   logger,
	}
}

func (h *Handler) optimizer(roll model.RollConfig) *engine.Optimizer {
	return engine.New(roll, engine.WithLogger(h.logger.Named("engine")))
}

// optimize binds an OptimizeRequest and runs the layout. It writes the
// error response itself and reports false on failure.
func (h *Handler) optimize(c *gin.Context) (OptimizeRequest, []model.CutRequest, model.OptimizationResult, bool) {
	var req OptimizeRequest
	if !h.bindJSON(c, &req) {
		return req, nil, model.OptimizationResult{}, false
	}
	cuts, err := toCuts(req.Cuts)
	if err != nil {
		h.writeError(c, err, "optimization failed")
		return req, nil, model.OptimizationResult{}, false
	}
	result, err := h.optimizer(req.Roll.Config()).Optimize(cuts)
	if err != nil {
		h.writeError(c, err, "optimization failed")
		return req, nil, model.OptimizationResult{}, false
	}
	return req, cuts, result, true
}

// Materials lists the material templates.
func (h *Handler) Materials(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog)
}

// Optimize computes a cut layout.
func (h *Handler) Optimize(c *gin.Context) {
	_, _, result, ok := h.optimize(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, OptimizeResponse{
		Result:   result,
		Summary:  summarize(result, h.currency),
		Remnants: model.DetectAllRemnants(result),
	})
}

// Compare runs the cut list against several roll configurations.
func (h *Handler) Compare(c *gin.Context) {
	var req CompareRequest
	if !h.bindJSON(c, &req) {
		return
	}
	cuts, err := toCuts(req.Cuts)
	if err == nil {
		err = engine.Validate(cuts, req.Roll.Config())
	}
	if err != nil {
		h.writeError(c, err, "comparison failed")
		return
	}

	var scenarios []engine.ComparisonScenario
	for _, s := range req.Scenarios {
		scenarios = append(scenarios, engine.ComparisonScenario{Name: s.Name, Roll: s.Roll.Config()})
	}
	if len(scenarios) == 0 {
		scenarios = engine.BuildDefaultScenarios(req.Roll.Config(), cuts)
	}

	results := engine.CompareScenarios(scenarios, cuts, engine.WithLogger(h.logger.Named("engine")))
	c.JSON(http.StatusOK, CompareResponse{Results: results, Best: engine.BestScenario(results)})
}

// Estimate returns a purchase estimate from areas alone.
func (h *Handler) Estimate(c *gin.Context) {
	var req EstimateRequest
	if !h.bindJSON(c, &req) {
		return
	}
	cuts, err := toCuts(req.Cuts)
	if err != nil {
		h.writeError(c, err, "estimate failed")
		return
	}
	c.JSON(http.StatusOK, model.CalculateRollEstimate(cuts, req.Roll.Config(), req.WastePercent))
}

// Render draws one roll segment as PNG. The sheet query parameter is
// 1-based; width sets the image width in pixels.
func (h *Handler) Render(c *gin.Context) {
	sheetNum, err := strconv.Atoi(c.DefaultQuery("sheet", "1"))
	if err != nil || sheetNum < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sheet must be a positive number"})
		return
	}
	width, err := strconv.Atoi(c.DefaultQuery("width", strconv.Itoa(export.DefaultPNGWidth)))
	if err != nil || width < 1 || width > 8000 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "width must be between 1 and 8000"})
		return
	}

	_, _, result, ok := h.optimize(c)
	if !ok {
		return
	}
	if sheetNum > len(result.Sheets) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("layout has %d segments", len(result.Sheets))})
		return
	}

	var buf bytes.Buffer
	if err := export.RenderSheetPNG(&buf, result.Sheets[sheetNum-1], result.Roll, width); err != nil {
		h.writeError(c, err, "failed to render segment")
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// ExportPDF returns the layout report as PDF.
func (h *Handler) ExportPDF(c *gin.Context) {
	req, _, result, ok := h.optimize(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := export.WritePDF(&buf, result, h.reportInfo(req)); err != nil {
		h.writeError(c, err, "failed to export PDF")
		return
	}
	h.attachment(c, req.ProjectName, ".pdf", "application/pdf", buf.Bytes())
}

// ExportXLSX returns the cut list and layout as an Excel workbook.
func (h *Handler) ExportXLSX(c *gin.Context) {
	req, cuts, result, ok := h.optimize(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, cuts, result, h.reportInfo(req)); err != nil {
		h.writeError(c, err, "failed to export workbook")
		return
	}
	h.attachment(c, req.ProjectName, ".xlsx",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func (h *Handler) reportInfo(req OptimizeRequest) export.ReportInfo {
	return export.ReportInfo{
		ProjectName:    req.ProjectName,
		MaterialLabel:  req.MaterialLabel,
		CurrencySymbol: h.currency,
	}
}

func (h *Handler) attachment(c *gin.Context, projectName, ext, contentType string, data []byte) {
	name := strings.TrimSuffix(project.ExportFileName(projectName), project.FileExtension) + ext
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, contentType, data)
}

// Import reads a cut list from an uploaded CSV or Excel file.
func (h *Handler) Import(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fh.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.writeError(c, err, "failed to read upload")
		return
	}
	defer f.Close()

	var result importer.ImportResult
	switch strings.ToLower(filepath.Ext(fh.Filename)) {
	case ".csv", ".txt":
		data, err := io.ReadAll(f)
		if err != nil {
			h.writeError(c, err, "failed to read upload")
			return
		}
		result = importer.ImportCSVData(data)
	case ".xlsx", ".xlsm":
		result = importer.ImportExcelFromReader(f)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file type, use .csv or .xlsx"})
		return
	}

	if len(result.Warnings) > 0 {
		h.logger.Info("import finished with warnings",
			zap.String("file", fh.Filename), zap.Strings("warnings", result.Warnings))
	}
	c.JSON(http.StatusOK, ImportResponse{
		Cuts:     fromCuts(result.Cuts),
		Errors:   nonNil(result.Errors),
		Warnings: nonNil(result.Warnings),
	})
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// SaveProject stores a project snapshot under the key in the path.
func (h *Handler) SaveProject(c *gin.Context) {
	p, err := project.Decode(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := project.SaveSession(c.Request.Context(), h.store, c.Param("key"), p); err != nil {
		h.writeError(c, err, "failed to store project")
		return
	}
	c.JSON(http.StatusOK, p)
}

// LoadProject returns the stored project snapshot.
func (h *Handler) LoadProject(c *gin.Context) {
	p, found, err := project.LoadSession(c.Request.Context(), h.store, c.Param("key"))
	if err != nil {
		h.writeError(c, err, "failed to load project")
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteProject removes a stored project snapshot.
func (h *Handler) DeleteProject(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.Param("key")); err != nil {
		h.writeError(c, err, "failed to delete project")
		return
	}
	c.Status(http.StatusNoContent)
}
