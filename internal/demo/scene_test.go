// File: scene_test.go
// Title: Demo Scene Tests
// Description: Drives the demo scene through a console end to end.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package demo

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/devconsole/foundation/console"
	mdwerror "github.com/msto63/devconsole/foundation/core/error"
	"github.com/msto63/devconsole/foundation/core/log"
)

func newScene(t *testing.T) (*console.Console, *Scene) {
	t.Helper()
	c, err := console.New(console.Options{Logger: log.NewNop()})
	require.NoError(t, err)
	s := NewScene()
	require.NoError(t, Register(c, s))
	return c, s
}

func lastLine(c *console.Console) string {
	out := c.Output()
	if len(out) == 0 {
		return ""
	}
	return out[len(out)-1].Text
}

func TestSpawnWithDefaultsAndLiterals(t *testing.T) {
	c, s := newScene(t)
	ctx := context.Background()

	result := c.Submit(ctx, "SpawnCube - alpha - 3 - Blue - (1, 2, 3)")
	require.True(t, result.OK(), "%v", result.Err)
	assert.Equal(t, "Spawned alpha", lastLine(c))

	require.True(t, c.Submit(ctx, "SpawnCube - beta").OK())

	alpha, ok := s.Cube("alpha")
	require.True(t, ok)
	assert.Equal(t, Cube{Name: "alpha", Size: 3, Color: Blue, Position: Vector3{1, 2, 3}}, *alpha)

	beta, _ := s.Cube("beta")
	assert.Equal(t, Cube{Name: "beta", Size: 1, Color: Red}, *beta)

	result = c.Submit(ctx, "SpawnCube - alpha")
	assert.True(t, mdwerror.HasCode(result.Err, mdwerror.CodeCommandFailed))
}

func TestInstanceCommandsReachEveryCube(t *testing.T) {
	c, s := newScene(t)
	ctx := context.Background()
	c.Submit(ctx, "SpawnCube - alpha - 1 - Green - up")
	c.Submit(ctx, "SpawnCube - beta - 2 - Red - spawnPoint")

	require.True(t, c.Submit(ctx, "SetSize - 4").OK())
	c.ClearOutput()
	require.True(t, c.Submit(ctx, "Describe").OK())

	var texts []string
	for _, l := range c.Output() {
		texts = append(texts, l.Text)
	}
	assert.Equal(t, []string{
		"> Describe",
		"alpha: size 4, Green at Vector3(0, 1, 0)",
		"beta: size 4, Red at Vector3(5, 0, 5)",
	}, texts)

	c.Submit(ctx, "Tag - [x, y]")
	assert.Equal(t, "beta tagged x, y", lastLine(c))

	c.Submit(ctx, "FirstCube")
	assert.Equal(t, "alpha", lastLine(c))

	result := c.Submit(ctx, "SetSize - 0")
	assert.True(t, mdwerror.HasCode(result.Err, mdwerror.CodeCommandFailed))
	assert.Equal(t, "[ERROR]: size must be positive", lastLine(c))

	c.Submit(ctx, "Explode")
	assert.Equal(t, "beta exploded", lastLine(c))
	runtime.KeepAlive(s)
}

func TestDestroyedCubesLeaveTheConsole(t *testing.T) {
	c, s := newScene(t)
	ctx := context.Background()
	c.Submit(ctx, "SpawnCube - alpha")
	c.Submit(ctx, "SpawnCube - beta")

	require.True(t, c.Submit(ctx, "DestroyCube - beta").OK())
	runtime.GC()
	runtime.GC()

	c.ClearOutput()
	c.Submit(ctx, "Describe")
	assert.Len(t, c.Output(), 2)
	assert.Equal(t, []string{"alpha"}, s.Names())

	result := c.Submit(ctx, "DestroyCube - gamma")
	assert.True(t, mdwerror.HasCode(result.Err, mdwerror.CodeCommandFailed))
}

func TestVariablesAndStaticClass(t *testing.T) {
	c, s := newScene(t)
	ctx := context.Background()
	c.Submit(ctx, "SpawnCube - alpha - 2")

	require.NoError(t, c.SetVarValue("Physics.Gravity", "3.5"))
	assert.Equal(t, 3.5, s.Gravity())

	c.Submit(ctx, "SetVarValue - Cube.Color - DarkRed")
	alpha, _ := s.Cube("alpha")
	assert.Equal(t, DarkRed, alpha.Color)

	assert.Equal(t, []string{
		"[Static Types:0]",
		"  (Physics:0)",
		"    Gravity: 3.5",
		"[Scene:1]",
		"  (Cube:0)",
		`    Name: "alpha"`,
		"    Size: 2",
		"    Color: DarkRed",
		"    Position: Vector3(0, 0, 0)",
	}, c.VarsView())

	c.Submit(ctx, "SetGravity - 9.5")
	assert.Equal(t, 9.5, s.Gravity())
}

func TestOpenAndCloseHooks(t *testing.T) {
	c, _ := newScene(t)
	ctx := context.Background()
	c.Submit(ctx, "SpawnCube - alpha")
	c.ClearOutput()

	require.True(t, c.Open(ctx))
	require.True(t, c.Close(ctx))
	require.True(t, c.Open(ctx))

	var texts []string
	for _, l := range c.Output() {
		texts = append(texts, l.Text)
	}
	assert.Equal(t, []string{
		"Scene console opened (1)",
		"1 cubes in the scene",
		"Scene console closed",
		"1 cubes in the scene",
		"Scene console opened (2)",
		"1 cubes in the scene",
	}, texts)
}

func TestSuggestionsForSceneParameters(t *testing.T) {
	c, _ := newScene(t)
	c.Submit(context.Background(), "SpawnCube - alpha")

	list := c.Update("DestroyCube - ", 14, false)
	assert.Equal(t, []string{"alpha"}, list.Selectable())

	list = c.Update("Paint - dark", 12, false)
	assert.Equal(t, "DarkRed", list.Selectable()[0])

	list = c.Update("MoveTo - ", 9, false)
	assert.Equal(t, []string{"zero", "up", "forward", "origin", "spawnPoint"}, list.Selectable())

	list = c.Update("SetGravity - ", 13, false)
	assert.Equal(t, []string{"0.00", "2.50", "5.00", "7.50", "10.00", "12.50", "15.00", "17.50"}, list.Selectable())
}
