package loader_test

import (
	"testing"

	"archsim/engine"
	"archsim/loader"
)

func TestDemoFibonacciSingleCycle(t *testing.T) {
	s, err := loader.LoadRISCV(loader.DemoFibonacci(10), 32, 0)
	if err != nil {
		t.Fatal(err)
	}
	e := engine.NewSingleCycle()
	if _, err := e.Run(s, 10000); err != nil {
		t.Fatal(err)
	}
	if got := s.Registers.Read(10); got != 55 {
		t.Errorf("fib(10) = %d, want 55", got)
	}
}

func TestDemoFibonacciPipeline(t *testing.T) {
	s, err := loader.LoadRISCV(loader.DemoFibonacci(10), 32, 0)
	if err != nil {
		t.Fatal(err)
	}
	p := engine.NewPipeline(true)
	if _, err := p.Run(s, 10000); err != nil {
		t.Fatal(err)
	}
	if got := s.Registers.Read(10); got != 55 {
		t.Errorf("fib(10) = %d, want 55", got)
	}
}

func TestDemoSumToN(t *testing.T) {
	s, err := loader.LoadToy(loader.DemoSumToN(20))
	if err != nil {
		t.Fatal(err)
	}
	e := engine.NewToy()
	if _, err := e.Run(s, 10000); err != nil {
		t.Fatal(err)
	}
	sum, err := s.Memory.ReadHalfword(0x401 * 2)
	if err != nil {
		t.Fatal(err)
	}
	if sum != 210 {
		t.Errorf("sum(1..20) = %d, want 210", sum)
	}
}
