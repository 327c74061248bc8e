/*
Package shatter implements a square which repeatedly shatters into irregular
polygonal fragments. Fragments are produced by cutting the square with random
chords, one chord after another, each against all polygons created so far.

This package holds the geometric primitives: points, chords, the bounding
square, affine transformations, the orientation test and segment intersection.
Sub-packages implement polygon clipping (polygon), random chords and colors
(gen), the subdivision engine (subdiv), the grow/shrink animation (anim) and
SVG rendering (render).

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package shatter
