// internal/utils/coords_test.go
package utils_test

import (
	"testing"

	"go-mazemaster/internal/config"
	"go-mazemaster/internal/utils"

	"github.com/stretchr/testify/assert"
)

func TestMazeIsCentered(t *testing.T) {
	offset := utils.MazeOffsetX()
	right := config.ScreenWidth - (offset + config.MazeWidth*config.CellSize)
	assert.Equal(t, offset, right, "left and right margins must match")
}

func TestCellOrigin(t *testing.T) {
	x0, y0 := utils.CellOrigin(0, 0)
	assert.Equal(t, float32(utils.MazeOffsetX()), x0)
	assert.Equal(t, float32(config.MazeOffsetY), y0)

	x1, y1 := utils.CellOrigin(2, 3)
	assert.Equal(t, x0+2*config.CellSize, x1)
	assert.Equal(t, y0+3*config.CellSize, y1)
}

func TestCellCenter(t *testing.T) {
	ox, oy := utils.CellOrigin(5, 5)
	cx, cy := utils.CellCenter(5, 5)
	assert.Equal(t, ox+config.CellSize/2, cx)
	assert.Equal(t, oy+config.CellSize/2, cy)
}
