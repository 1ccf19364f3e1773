// Command archsim runs the RV32I single-cycle engine, the RV32I five-stage
// pipeline, or the toy accumulator engine over a built-in demo program.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"archsim/config"
	"archsim/engine"
	"archsim/loader"
	"archsim/metrics"
	"archsim/register"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "archsim",
		Short: "RISC-V and toy architecture simulator",
	}

	var (
		runArch       string
		runMaxCycles  uint64
		runDemoN      uint32
		runConfigPath string
	)
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Load a demo program and run it to completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(runConfigPath)
			if err != nil {
				return err
			}
			if runArch == "" {
				runArch = cfg.Execution.Architecture
			}
			if runMaxCycles == 0 {
				runMaxCycles = cfg.Execution.MaxCycles
			}
			return runDemo(cmd, runArch, runDemoN, runMaxCycles, cfg)
		},
	}
	runCmd.Flags().StringVar(&runArch, "arch", "", "rv32i-single, rv32i-pipeline, or toy (default from config)")
	runCmd.Flags().Uint64Var(&runMaxCycles, "max-cycles", 0, "cycle budget, 0 = use config default")
	runCmd.Flags().Uint32Var(&runDemoN, "n", 10, "demo program input: fibonacci index (rv32i) or sum bound (toy)")
	runCmd.Flags().StringVar(&runConfigPath, "config", "", "path to a TOML config file, default is the platform config path")

	var (
		stepArch       string
		stepMaxCycles  uint64
		stepDemoN      uint32
		stepConfigPath string
	)
	stepCmd := &cobra.Command{
		Use:   "step",
		Short: "Load a demo program and single-step it, printing state after each step",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(stepConfigPath)
			if err != nil {
				return err
			}
			if stepArch == "" {
				stepArch = cfg.Execution.Architecture
			}
			return stepDemo(cmd, stepArch, stepDemoN, stepMaxCycles, cfg)
		},
	}
	stepCmd.Flags().StringVar(&stepArch, "arch", "", "rv32i-single or toy (default from config)")
	stepCmd.Flags().Uint64Var(&stepMaxCycles, "max-cycles", 20, "maximum steps to print")
	stepCmd.Flags().Uint32Var(&stepDemoN, "n", 10, "demo program input: fibonacci index (rv32i) or sum bound (toy)")
	stepCmd.Flags().StringVar(&stepConfigPath, "config", "", "path to a TOML config file, default is the platform config path")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the archsim version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, stepCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

func runDemo(cmd *cobra.Command, arch string, n uint32, maxCycles uint64, cfg *config.Config) error {
	out := cmd.OutOrStdout()

	switch arch {
	case "toy":
		s, err := loader.LoadToy(loader.DemoSumToN(uint16(n)))
		if err != nil {
			return err
		}
		s.Metrics.Start()
		e := engine.NewToy()
		executed, err := e.Run(s, maxCycles)
		s.Metrics.Stop()
		if err != nil {
			return err
		}
		sum, _ := s.Memory.ReadHalfword(0x401 * 2)
		fmt.Fprintf(out, "executed %d instructions, sum = %d\n", executed, sum)
		printMetrics(out, s.Metrics)
		return nil

	case "rv32i-single":
		s, err := loader.LoadRISCV(loader.DemoFibonacci(n), cfg.Memory.AddressWidth, cfg.Memory.MinBytes)
		if err != nil {
			return err
		}
		if err := s.ChangePrivilegeLevel(cfg.CSR.DefaultPrivilege); err != nil {
			return err
		}
		s.Metrics.Start()
		e := engine.NewSingleCycle()
		executed, err := e.Run(s, maxCycles)
		s.Metrics.Stop()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "executed %d instructions, fib(%d) = x10 = %d\n", executed, n, s.Registers.Read(10))
		printMetrics(out, s.Metrics)
		return nil

	case "rv32i-pipeline":
		s, err := loader.LoadRISCV(loader.DemoFibonacci(n), cfg.Memory.AddressWidth, cfg.Memory.MinBytes)
		if err != nil {
			return err
		}
		if err := s.ChangePrivilegeLevel(cfg.CSR.DefaultPrivilege); err != nil {
			return err
		}
		s.Metrics.Start()
		p := engine.NewPipeline(cfg.Execution.HazardDetect)
		cycles, err := p.Run(s, maxCycles)
		s.Metrics.Stop()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "ran %d cycles, fib(%d) = x10 = %d\n", cycles, n, s.Registers.Read(10))
		printMetrics(out, s.Metrics)
		return nil

	default:
		return fmt.Errorf("unknown architecture %q: want rv32i-single, rv32i-pipeline, or toy", arch)
	}
}

func stepDemo(cmd *cobra.Command, arch string, n uint32, maxSteps uint64, cfg *config.Config) error {
	out := cmd.OutOrStdout()

	switch arch {
	case "toy":
		s, err := loader.LoadToy(loader.DemoSumToN(uint16(n)))
		if err != nil {
			return err
		}
		e := engine.NewToy()
		for i := uint64(0); maxSteps == 0 || i < maxSteps; i++ {
			ok, err := e.Step(s)
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			fmt.Fprintf(out, "pc=%#06x accu=%#06x\n", s.PC, s.Accumulator)
		}
		return nil

	case "rv32i-single":
		s, err := loader.LoadRISCV(loader.DemoFibonacci(n), cfg.Memory.AddressWidth, cfg.Memory.MinBytes)
		if err != nil {
			return err
		}
		if err := s.ChangePrivilegeLevel(cfg.CSR.DefaultPrivilege); err != nil {
			return err
		}
		e := engine.NewSingleCycle()
		for i := uint64(0); maxSteps == 0 || i < maxSteps; i++ {
			ok, err := e.Step(s)
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			printRegisters(out, s.PC, s.Registers)
		}
		return nil

	default:
		return fmt.Errorf("step does not support %q; use rv32i-single or toy", arch)
	}
}

func printMetrics(out io.Writer, m *metrics.Metrics) {
	fmt.Fprintf(out, "instructions=%d branches=%d procedures=%d cycles=%d time=%s\n",
		m.InstructionCount, m.BranchCount, m.ProcedureCount, m.Cycles, m.ExecutionTime)
}

func printRegisters(out io.Writer, pc uint32, r *register.File) {
	fmt.Fprintf(out, "pc=%#010x x1=%d x2=%d x3=%d x4=%d x10=%d\n",
		pc, r.Read(1), r.Read(2), r.Read(3), r.Read(4), r.Read(10))
}

