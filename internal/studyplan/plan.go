package studyplan

import "studymate/internal/domain"

// Plan tracks completion of an ordered list of steps. Completion is one-way
// and the celebration is latched: it fires on the call that completes the
// last pending step and never again.
type Plan struct {
	steps      []domain.StudyStep
	celebrated bool
}

func NewPlan(steps []domain.StudyStep) *Plan {
	cp := make([]domain.StudyStep, len(steps))
	for i, s := range steps {
		s.Tips = append([]string(nil), s.Tips...)
		if s.Status == "" {
			s.Status = domain.StepPending
		}
		cp[i] = s
	}
	return &Plan{steps: cp}
}

func (p *Plan) Len() int { return len(p.steps) }

func (p *Plan) Steps() []domain.StudyStep {
	cp := make([]domain.StudyStep, len(p.steps))
	for i, s := range p.steps {
		s.Tips = append([]string(nil), s.Tips...)
		cp[i] = s
	}
	return cp
}

// MarkComplete completes step index. Completing an already completed step
// changes nothing. celebrate is true only for the call that made every
// step complete.
func (p *Plan) MarkComplete(index int) (celebrate bool, err error) {
	if index < 0 || index >= len(p.steps) {
		return false, domain.NewIndexOutOfRangeError(index, len(p.steps))
	}
	if p.steps[index].Status == domain.StepCompleted {
		return false, nil
	}
	p.steps[index].Status = domain.StepCompleted
	if !p.celebrated && p.AllComplete() {
		p.celebrated = true
		return true, nil
	}
	return false, nil
}

// AllComplete is false for an empty plan.
func (p *Plan) AllComplete() bool {
	if len(p.steps) == 0 {
		return false
	}
	for _, s := range p.steps {
		if s.Status != domain.StepCompleted {
			return false
		}
	}
	return true
}

func (p *Plan) Completed() int {
	n := 0
	for _, s := range p.steps {
		if s.Status == domain.StepCompleted {
			n++
		}
	}
	return n
}

func (p *Plan) Celebrated() bool { return p.celebrated }
