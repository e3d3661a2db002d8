package main

import "pcbeep/internal/melody"

// the tune everybody knows
var demoTune = melody.FromPairs([][2]int{
	{659, 120}, {622, 120}, {659, 120}, {622, 120}, {659, 120},
	{94, 120}, {587, 120}, {523, 120}, {440, 120}, {262, 120},
	{330, 120}, {440, 120}, {494, 120}, {330, 120}, {415, 120},
	{494, 120}, {523, 120}, {330, 120}, {659, 120}, {622, 120},
	{659, 120}, {622, 120}, {659, 120}, {494, 120}, {587, 120},
	{523, 120}, {440, 120}, {262, 120}, {330, 120}, {440, 120},
	{494, 120}, {330, 120}, {523, 120}, {494, 120}, {440, 120},
})
