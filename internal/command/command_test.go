package command

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nuclio/logger"
	nucliozap "github.com/nuclio/zap"
	"github.com/stretchr/testify/suite"
	lzss "github.com/woozymasta/lzss-generic"
)

type CommandTestSuite struct {
	suite.Suite
	logger  logger.Logger
	tempDir string
}

func (suite *CommandTestSuite) SetupSuite() {
	var err error

	suite.logger, err = nucliozap.NewNuclioZapTest("test")
	suite.Require().NoError(err)
}

func (suite *CommandTestSuite) SetupTest() {
	suite.tempDir = suite.T().TempDir()
}

func (suite *CommandTestSuite) TestCompressDecompressFiles() {
	plain := bytes.Repeat([]byte("file based round trip "), 100)
	inputPath := suite.writeFile("plain.bin", plain)
	compressedPath := filepath.Join(suite.tempDir, "plain.lzss")
	outputPath := filepath.Join(suite.tempDir, "plain.out")

	_, _, err := suite.execute(nil, "compress", "-i", inputPath, "-o", compressedPath, "--verify")
	suite.Require().NoError(err)

	compressed, err := os.ReadFile(compressedPath)
	suite.Require().NoError(err)
	suite.Require().Less(len(compressed), len(plain))

	_, _, err = suite.execute(nil,
		"decompress",
		"-i", compressedPath,
		"-o", outputPath,
		"--size", "2200")
	suite.Require().NoError(err)

	decompressed, err := os.ReadFile(outputPath)
	suite.Require().NoError(err)
	suite.Require().Equal(plain, decompressed)
}

func (suite *CommandTestSuite) TestCompressStdioWithFlagOverrides() {
	plain := []byte("stdin stdin stdin stdout")

	output, rc, err := suite.execute(plain, "compress", "--preset", "small", "--ei", "6", "--fill", "0")
	suite.Require().NoError(err)

	expectedParams := &lzss.Params{EI: 6, EJ: 4, P: 2, Rless: true, Fill: 0}
	suite.Require().Equal(expectedParams, rc.params)

	expected, err := lzss.Compress(plain, expectedParams)
	suite.Require().NoError(err)
	suite.Require().Equal(string(expected), output)
}

func (suite *CommandTestSuite) TestParamsFile() {
	paramsPath := suite.writeFile("params.yaml", []byte("ei: 10\nej: 3\np: 3\nrless: false\nfill: 0xff\n"))

	_, rc, err := suite.execute([]byte("payload"), "compress", "--params-file", paramsPath, "--p", "2")
	suite.Require().NoError(err)
	suite.Require().Equal(&lzss.Params{EI: 10, EJ: 3, P: 2, Rless: false, Fill: 0xFF}, rc.params)
}

func (suite *CommandTestSuite) TestInvalidParamsRejected() {
	_, _, err := suite.execute([]byte("x"), "compress", "--ei", "0")
	suite.Require().Error(err)

	_, _, err = suite.execute([]byte("x"), "compress", "--preset", "unknown")
	suite.Require().Error(err)

	badFill := suite.writeFile("bad.yaml", []byte("fill: 300\n"))
	_, _, err = suite.execute([]byte("x"), "compress", "--params-file", badFill)
	suite.Require().Error(err)
}

func (suite *CommandTestSuite) TestDecompressRequiresSize() {
	_, _, err := suite.execute([]byte{0x83, 0x00}, "decompress")
	suite.Require().Error(err)
}

func (suite *CommandTestSuite) TestDecompressTruncatedFails() {
	compressed, err := lzss.Compress(bytes.Repeat([]byte("truncate me "), 20), nil)
	suite.Require().NoError(err)

	_, _, err = suite.execute(compressed[:len(compressed)/2], "decompress", "--size", "240")
	suite.Require().Error(err)
}

func (suite *CommandTestSuite) TestInspect() {
	compressed, err := lzss.Compress([]byte("abcabcabc"), nil)
	suite.Require().NoError(err)

	output, _, err := suite.execute(compressed, "inspect", "--size", "9")
	suite.Require().NoError(err)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	suite.Require().Len(lines, 4)
	suite.Require().Equal("3 <6,3>", strings.Join(strings.Fields(lines[3]), " "))
}

func (suite *CommandTestSuite) TestPresets() {
	output, _, err := suite.execute(nil, "presets")
	suite.Require().NoError(err)

	for _, name := range lzss.PresetNames() {
		suite.Require().Contains(output, name)
	}
}

func (suite *CommandTestSuite) execute(stdin []byte, args ...string) (string, *RootCommandeer, error) {
	rootCommandeer := NewRootCommandeer()
	rootCommandeer.loggerInstance = suite.logger

	var output bytes.Buffer
	cmd := rootCommandeer.GetCmd()
	cmd.SetIn(bytes.NewReader(stdin))
	cmd.SetOut(&output)
	cmd.SetArgs(args)

	err := rootCommandeer.Execute()

	return output.String(), rootCommandeer, err
}

func (suite *CommandTestSuite) writeFile(name string, contents []byte) string {
	path := filepath.Join(suite.tempDir, name)
	suite.Require().NoError(os.WriteFile(path, contents, 0o644))

	return path
}

func TestCommandTestSuite(t *testing.T) {
	suite.Run(t, new(CommandTestSuite))
}
