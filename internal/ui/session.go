package ui

import (
	"context"

	"go.uber.org/zap"

	"github.com/piwi3910/toolbox/internal/engine"
	"github.com/piwi3910/toolbox/internal/importer"
	"github.com/piwi3910/toolbox/internal/model"
	"github.com/piwi3910/toolbox/internal/project"
)

// Session owns the working project of the desktop app: the cut list, the
// roll settings, undo history and the last optimization result. Every edit
// drops the result, so a layout on screen always matches the inputs.
type Session struct {
	Project model.Project
	Result  *model.OptimizationResult

	history *History
	store   project.Store
	logger  *zap.Logger
	opts    []engine.Option
}

// NewSession creates a session with a fresh project. store may be nil, in
// which case nothing is persisted between runs.
func NewSession(store project.Store, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		Project: model.NewProject(),
		history: NewHistory(),
		store:   store,
		logger:  logger,
		opts:    []engine.Option{engine.WithLogger(logger.Named("engine"))},
	}
}

// SetOptimizerOptions replaces the options passed to the optimizer.
func (s *Session) SetOptimizerOptions(opts ...engine.Option) {
	s.opts = append([]engine.Option{engine.WithLogger(s.logger.Named("engine"))}, opts...)
}

// History exposes the undo stack for menu state.
func (s *Session) History() *History {
	return s.history
}

// change records the current state under label before a modification.
func (s *Session) change(label string) {
	s.history.Push(MakeSnapshot(s.Project, label))
	s.Result = nil
}

// AddCut appends a cut entered as width in cm and length in m.
func (s *Session) AddCut(label string, widthCM, lengthM float64) (model.CutRequest, error) {
	before := MakeSnapshot(s.Project, "Add Cut")
	c, err := s.Project.Cuts.Add(label, s.Project.MaterialLabel,
		model.CentimetersToMeters(widthCM), lengthM, s.Project.Roll().WidthM)
	if err != nil {
		return model.CutRequest{}, err
	}
	s.history.Push(before)
	s.Result = nil
	return c, nil
}

// UpdateCut changes an existing cut.
func (s *Session) UpdateCut(id, label, materialLabel string, widthCM, lengthM float64) error {
	before := MakeSnapshot(s.Project, "Edit Cut")
	if err := s.Project.Cuts.Update(id, label, materialLabel,
		model.CentimetersToMeters(widthCM), lengthM, s.Project.Roll().WidthM); err != nil {
		return err
	}
	s.history.Push(before)
	s.Result = nil
	return nil
}

// RemoveCut deletes a cut. Returns false if it does not exist.
func (s *Session) RemoveCut(id string) bool {
	if s.Project.Cuts.Find(id) < 0 {
		return false
	}
	s.change("Delete Cut")
	return s.Project.Cuts.Remove(id)
}

// ClearCuts removes all cuts.
func (s *Session) ClearCuts() {
	if len(s.Project.Cuts) == 0 {
		return
	}
	s.change("Clear Cuts")
	s.Project.Cuts = model.CutList{}
}

// SetRoll replaces the roll settings. Values are checked when optimizing.
func (s *Session) SetRoll(roll model.RollConfig) {
	if roll == s.Project.Roll() {
		return
	}
	s.change("Change Roll")
	s.Project.SetRoll(roll)
}

// SetProjectName renames the project.
func (s *Session) SetProjectName(name string) {
	if name == s.Project.ProjectName {
		return
	}
	s.change("Rename Project")
	s.Project.ProjectName = name
}

// ApplyMaterial takes the name and price of a material template.
func (s *Session) ApplyMaterial(m model.Material) {
	s.change("Apply Material")
	s.Project.ApplyMaterial(m)
}

// Replace swaps in another project, e.g. after opening a file.
func (s *Session) Replace(p model.Project, label string) {
	s.change(label)
	p.Normalize()
	s.Project = p
}

// ImportCuts appends imported cuts and returns the messages of cuts the
// roll could not take.
func (s *Session) ImportCuts(result importer.ImportResult) []string {
	if len(result.Cuts) == 0 {
		return nil
	}
	s.change("Import Cuts")
	rejected := result.AppendTo(&s.Project.Cuts, s.Project.Roll().WidthM)
	if len(result.Warnings) > 0 {
		s.logger.Info("import finished with warnings", zap.Strings("warnings", result.Warnings))
	}
	return rejected
}

// Undo reverts the last change. Returns false if there is nothing to undo.
func (s *Session) Undo() bool {
	snap, ok := s.history.Undo(MakeSnapshot(s.Project, "Undo"))
	if !ok {
		return false
	}
	s.Project = snap.Project
	s.Result = nil
	return true
}

// Redo reapplies the last undone change.
func (s *Session) Redo() bool {
	snap, ok := s.history.Redo(MakeSnapshot(s.Project, "Redo"))
	if !ok {
		return false
	}
	s.Project = snap.Project
	s.Result = nil
	return true
}

// Optimize lays out the cut list. On failure the previous result is kept.
func (s *Session) Optimize() (model.OptimizationResult, error) {
	result, err := engine.New(s.Project.Roll(), s.opts...).Optimize(s.Project.Cuts)
	if err != nil {
		return model.OptimizationResult{}, err
	}
	s.Result = &result
	return result, nil
}

// Compare runs the default what-if scenarios for the current roll.
func (s *Session) Compare() ([]engine.ComparisonResult, error) {
	roll := s.Project.Roll()
	if err := engine.Validate(s.Project.Cuts, roll); err != nil {
		return nil, err
	}
	scenarios := engine.BuildDefaultScenarios(roll, s.Project.Cuts)
	return engine.CompareScenarios(scenarios, s.Project.Cuts, s.opts...), nil
}

// Estimate returns the area-based purchase estimate.
func (s *Session) Estimate(wastePercent float64) model.RollEstimate {
	return model.CalculateRollEstimate(s.Project.Cuts, s.Project.Roll(), wastePercent)
}

// Save writes the working project to the session store.
func (s *Session) Save(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	return project.SaveSession(ctx, s.store, project.SessionKey, s.Project)
}

// Restore loads the working project from the session store. It reports
// whether a stored project was found.
func (s *Session) Restore(ctx context.Context) (bool, error) {
	if s.store == nil {
		return false, nil
	}
	p, found, err := project.LoadSession(ctx, s.store, project.SessionKey)
	if err != nil || !found {
		return false, err
	}
	s.Project = p
	s.Result = nil
	s.history.Clear()
	return true, nil
}
