package anneal

import (
	"math"
	"testing"
)

func validParams() Params {
	return Params{InitialTemp: 1, CoolingRate: 0.99, MinTemp: 0.01, MaxIterations: 100, MaxRestarts: 1}
}

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Params)
		wantErr bool
	}{
		{"valid", func(p *Params) {}, false},
		{"zero iterations is legal", func(p *Params) { p.MaxIterations = 0 }, false},
		{"zero restarts is legal", func(p *Params) { p.MaxRestarts = 0 }, false},
		{"zero min temp selects builtin floor", func(p *Params) { p.MinTemp = 0 }, false},
		{"zero initial temp", func(p *Params) { p.InitialTemp = 0 }, true},
		{"negative initial temp", func(p *Params) { p.InitialTemp = -1 }, true},
		{"zero cooling rate", func(p *Params) { p.CoolingRate = 0 }, true},
		{"cooling rate of one", func(p *Params) { p.CoolingRate = 1 }, true},
		{"negative min temp", func(p *Params) { p.MinTemp = -0.1 }, true},
		{"min temp above initial", func(p *Params) { p.MinTemp = 2 }, true},
		{"negative iterations", func(p *Params) { p.MaxIterations = -1 }, true},
		{"negative restarts", func(p *Params) { p.MaxRestarts = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr && err == nil {
				t.Fatalf("Validate() = nil, want error for %+v", p)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestParams_PerturbedIsMonotone(t *testing.T) {
	p := validParams()
	for i := 0; i < 5; i++ {
		next := p.Perturbed()
		if next.InitialTemp <= p.InitialTemp {
			t.Fatalf("perturbation %d: InitialTemp %v not raised from %v", i, next.InitialTemp, p.InitialTemp)
		}
		if next.CoolingRate <= p.CoolingRate || next.CoolingRate >= 1 {
			t.Fatalf("perturbation %d: CoolingRate %v, want in (%v, 1)", i, next.CoolingRate, p.CoolingRate)
		}
		if next.MaxIterations != p.MaxIterations || next.MaxRestarts != p.MaxRestarts {
			t.Fatalf("perturbation %d changed budgets: %+v", i, next)
		}
		if err := next.Validate(); err != nil {
			t.Fatalf("perturbation %d produced invalid params: %v", i, err)
		}
		p = next
	}
}

func TestParams_PerturbedValues(t *testing.T) {
	p := Params{InitialTemp: 1.0, CoolingRate: 0.995, MaxIterations: 100}
	next := p.Perturbed()
	if next.InitialTemp != 5.0 {
		t.Errorf("InitialTemp = %v, want 5.0", next.InitialTemp)
	}
	if math.Abs(next.CoolingRate-0.9975) > 1e-12 {
		t.Errorf("CoolingRate = %v, want 0.9975", next.CoolingRate)
	}
}
