package main

import "image/color"

var pageColor = color.RGBA{34, 34, 34, 255}
var boardColor = color.RGBA{0xE0, 0xF2, 0xFF, 255}
var gridColor = color.White
var blackPieceColor = color.Black
var whitePieceColor = color.White
var rimColor = color.RGBA{0x65, 0x43, 0x21, 255}

// translucent hints, alpha 0.2
var blackHintColor = color.NRGBA{0, 0, 0, 51}
var whiteHintColor = color.NRGBA{255, 255, 255, 51}
