// Command run6502 is a small host around the cpu package: it loads a
// raw 6502 binary into RAM and either runs it for a fixed cycle
// budget, disassembles it, or drops into an interactive step debugger.
package main

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/urfave/cli.v2"

	"github.com/kingshuk7995/emulate-cpu-6502/cpu"
	"github.com/kingshuk7995/emulate-cpu-6502/debugger"
	"github.com/kingshuk7995/emulate-cpu-6502/disassemble"
	"github.com/kingshuk7995/emulate-cpu-6502/loader"
	"github.com/kingshuk7995/emulate-cpu-6502/memory"
)

// loadOrigin is where programs are mapped in, chosen to leave zero
// page and the stack page free.
const loadOrigin = uint16(0x8000)

// defaultProgram is installed when no file is given: LDA #$2A, STA
// $00, BRK — loads 0x2A into A, stores it to zero page, halts.
var defaultProgram = []byte{0xA9, 0x2A, 0x85, 0x00, 0x00}

func prepare(path string) (*cpu.Chip, memory.Bank, error) {
	bank, err := memory.New8BitRAMBank(1 << 16)
	if err != nil {
		return nil, nil, err
	}
	bank.PowerOn()

	program := defaultProgram
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("reading %s: %w", path, err)
		}
		program = data
	}
	if err := loader.Load(bank, program, loadOrigin); err != nil {
		return nil, nil, err
	}

	chip := cpu.Init()
	chip.Reset(bank)
	return chip, bank, nil
}

func runAction(c *cli.Context) error {
	chip, bank, err := prepare(c.Args().First())
	if err != nil {
		return err
	}
	budget := c.Int("budget")
	spent, err := chip.Execute(budget, bank)
	if err != nil {
		log.Printf("halted after %d cycles: %v", spent, err)
		return cli.Exit("", 1)
	}
	fmt.Printf("executed %d cycles\n", spent)
	fmt.Printf("A=%02X X=%02X Y=%02X S=%02X PC=%04X\n", chip.A, chip.X, chip.Y, chip.S, chip.PC)
	fmt.Printf("flags: N=%v V=%v B=%v D=%v I=%v Z=%v C=%v\n",
		chip.Negative(), chip.Overflow(), chip.Break(), chip.Decimal(),
		chip.InterruptDisable(), chip.Zero(), chip.Carry())
	return nil
}

func debugAction(c *cli.Context) error {
	chip, bank, err := prepare(c.Args().First())
	if err != nil {
		return err
	}
	return debugger.Run(chip, bank)
}

func disasmAction(c *cli.Context) error {
	_, bank, err := prepare(c.Args().First())
	if err != nil {
		return err
	}
	pc := loadOrigin
	for i := 0; i < 64; i++ {
		text, length := disassemble.Step(pc, bank)
		fmt.Println(text)
		pc += uint16(length)
	}
	return nil
}

func main() {
	app := &cli.App{
		Name:  "run6502",
		Usage: "load and run raw 6502 programs",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "execute a program for a fixed cycle budget",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "budget", Aliases: []string{"b"}, Value: 1000, Usage: "cycles to execute"},
				},
				Action: runAction,
			},
			{
				Name:   "debug",
				Usage:  "open the interactive step debugger",
				Action: debugAction,
			},
			{
				Name:   "disasm",
				Usage:  "disassemble a program",
				Action: disasmAction,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
