package harness

import (
	"fmt"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/iamNilotpal/ipchecksum/internal/adapters/checksum"
	"github.com/iamNilotpal/ipchecksum/internal/core/domain"
	"github.com/iamNilotpal/ipchecksum/internal/core/services/protocol"
)

// helperEnv makes the test binary behave like the checksum binary, so the
// exec runner can be tested without building cmd/ipchecksum.
const helperEnv = "IPCHECKSUM_HELPER_MODE"

func TestMain(m *testing.M) {
	if mode := os.Getenv(helperEnv); mode != "" {
		os.Exit(runHelper(mode, os.Args[1:]))
	}
	os.Exit(m.Run())
}

func runHelper(mode string, args []string) int {
	switch mode {
	case "fail":
		fmt.Fprintln(os.Stderr, "strategy exploded")
		return 3
	case "nohex":
		fmt.Println("Checksum computed, nothing to see")
		return 0
	case "sleep":
		time.Sleep(10 * time.Second)
		return 0
	}

	if len(args) != 3 || args[0] != "-s" {
		fmt.Fprintln(os.Stderr, "usage: -s <strategy> <file>")
		return 2
	}
	idx, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	s, err := checksum.DefaultRegistry().Get(idx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	data, err := os.ReadFile(args[2])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	sum := s.Calculate(data)
	if mode == "broken" && idx == 1 {
		sum ^= 0x0100
	}

	_ = protocol.WriteResult(os.Stdout, "", domain.ChecksumResult{
		Strategy: domain.StrategyName(s.Name()),
		Sum:      sum,
		Size:     len(data),
	})
	return 0
}
