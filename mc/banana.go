// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mc

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// muLB is the lower bound on the direction cosine in outbound face weights:
// below it the 1/mu surface-crossing factor is replaced by 2/muLB so that
// grazing crossings cannot contribute a singular weight
const muLB = 0.01

// onFaceTol detects a walk point sitting on a voxel face
const onFaceTol = 1e-10

// bdryTol detects a track vertex sitting on a layer interface
const bdryTol = 1e-9

// muFloor applies the muLB floor to the inverse-cosine weight divisor
func muFloor(mu float64) float64 {
	if math.Abs(mu) > muLB {
		return mu
	}
	return muLB / 2
}

// computeBanana replays the recorded polyline of one terminated photon over
// the cartesian voxel grid, scoring a weighted inbound contribution on every
// face crossed into a voxel and an outbound 1/mu contribution on every face
// crossed out of one. The walk weight starts at the launch weight and is
// multiplied by the local albedo after every real (non-boundary) collision.
func (o *worker) computeBanana() {
	det := &o.cfg.Det
	res := o.res
	h := o.hist

	minX := -float64(det.Nr)*det.Dr - det.Dr/2
	maxX := +float64(det.Nr)*det.Dr + det.Dr/2
	minY := minX
	maxY := maxX
	minZ := 0.0
	maxZ := float64(det.Nz) * det.Dz
	dx := det.Dr
	dy := float64(det.Nr)*det.Dr + det.Dr // the y dimension is collapsed
	dz := det.Dz
	nx, ny, nz := res.Bx, res.By, res.Bz

	res.BananaPhotons++
	discWt := h.W[0]
	inLayer := false
	dead := false

	// ix,iy,iz,side,mu carry over from one segment to the next
	var ix, iy, iz, side int
	var mu float64
	var s [6]float64

	inRange := func() bool {
		return ix >= 0 && ix < nx && iy >= 0 && iy < ny && iz >= 0 && iz < nz
	}

	for k := 0; k < h.Npts-1 && !dead; k++ {
		thisX, thisY, thisZ := h.X[k], h.Y[k], h.Z[k]
		nextX, nextY, nextZ := h.X[k+1], h.Y[k+1], h.Z[k+1]
		tracklen := math.Sqrt((nextX-thisX)*(nextX-thisX) +
			(nextY-thisY)*(nextY-thisY) + (nextZ-thisZ)*(nextZ-thisZ))
		xmid, ymid, zmid := thisX, thisY, thisZ
		nextSameVox := false

		if math.Abs(nextX) > maxX || math.Abs(nextY) > maxY {
			inLayer = false
		} else {

			// reclassify boundary collisions against the interface planes,
			// based on the segment start so the deweighting below agrees
			h.BdryCol[k] = 0
			for i := 1; i <= o.tis.NumLay; i++ {
				if math.Abs(thisZ-o.tis.Layers[i].Zbegin) < bdryTol {
					h.BdryCol[k] = 1
				}
			}

			if !inLayer {
				if k == 0 && minZ == 0.0 {
					// grid starts at the source plane: enter the top voxel
					inLayer = true
					ix = int(math.Floor((thisX - minX) / dx))
					iy = int(math.Floor((thisY - minY) / dy))
					iz = 0
					side = 0
					if inRange() {
						res.InSide[side][ix][iy][iz] += discWt
					} else {
						inLayer = false
					}
				} else {
					// crossing into the grid through the top or bottom plane
					s0 := 0.0
					if thisZ <= minZ && nextZ > minZ {
						s0 = (minZ - thisZ) / (nextZ - thisZ)
					} else if thisZ > maxZ && nextZ < maxZ {
						s0 = (maxZ - thisZ) / (nextZ - thisZ)
					}
					if s0 > 0 && s0 <= 1 {
						xmid = thisX + s0*(nextX-thisX)
						ymid = thisY + s0*(nextY-thisY)
						zmid = thisZ + s0*(nextZ-thisZ)
						ix = int(math.Floor((xmid - minX) / dx))
						iy = int(math.Floor((ymid - minY) / dy))
						if nextZ > thisZ { // enter from the top
							iz = 0
							side = 0
						} else { // enter from the bottom
							iz = nz - 1
							side = 5
						}
						inLayer = true
						if inRange() {
							res.InSide[side][ix][iy][iz] += discWt
						} else {
							inLayer = false
						}
					}
				}
			} else {
				// crossing out of the grid through the top or bottom plane
				s0 := 0.0
				if thisZ > minZ && nextZ <= minZ {
					s0 = (minZ - thisZ) / (nextZ - thisZ)
				} else if thisZ < maxZ && nextZ > maxZ {
					s0 = (maxZ - thisZ) / (nextZ - thisZ)
				}
				if s0 > 0 && s0 <= 1 {
					xmid = thisX + s0*(nextX-thisX)
					ymid = thisY + s0*(nextY-thisY)
					zmid = thisZ + s0*(nextZ-thisZ)
					ix = int(math.Floor((xmid - minX) / dx))
					iy = int(math.Floor((ymid - minY) / dy))
					if nextZ > thisZ { // exit through the bottom
						iz = nz - 1
						side = 5
						mu = (nextZ - thisZ) / tracklen
					} else { // exit through the top
						iz = 0
						side = 0
						mu = -(nextZ - thisZ) / tracklen
					}
					if inRange() {
						res.OutSide[side][ix][iy][iz] += discWt / muFloor(mu)
					}
					inLayer = false
				}
			}

			for !nextSameVox && inLayer && !dead {

				// reflecting collision at a layer face: score the exit
				// weight on the current face before stepping upward
				if h.BdryCol[k] == 1 && thisZ > nextZ && thisZ == zmid {
					res.OutSide[side][ix][iy][iz] += discWt / muFloor(mu)
					iz--
				}

				// ended in this voxel?
				if math.Floor((nextX-minX)/dx) == float64(ix) &&
					math.Floor((nextY-minY)/dy) == float64(iy) &&
					math.Floor((nextZ-minZ)/dz) == float64(iz) {
					nextSameVox = true
					continue
				}

				// parameters to the six planes of the current voxel; the
				// face the point sits on is excluded from its own axis
				fx := math.Mod(xmid-minX, dx)
				fy := math.Mod(ymid-minY, dy)
				fz := math.Mod(zmid-minZ, dz)
				switch {
				case fx < onFaceTol || math.Abs(fx-dx) < onFaceTol: // on a y-z face
					if nextX > thisX {
						s[2] = 99
						s[4] = (minX + float64(ix+1)*dx - xmid) / (nextX - xmid)
					} else {
						s[2] = (minX + float64(ix)*dx - xmid) / (nextX - xmid)
						s[4] = 99
					}
					s[3] = (minY + float64(iy)*dy - ymid) / (nextY - ymid)
					s[1] = (minY + float64(iy+1)*dy - ymid) / (nextY - ymid)
					s[0] = (minZ + float64(iz)*dz - zmid) / (nextZ - zmid)
					s[5] = (minZ + float64(iz+1)*dz - zmid) / (nextZ - zmid)
				case fy < onFaceTol || math.Abs(fy-dy) < onFaceTol: // on an x-z face
					s[2] = (minX + float64(ix)*dx - xmid) / (nextX - xmid)
					s[4] = (minX + float64(ix+1)*dx - xmid) / (nextX - xmid)
					if nextY > thisY {
						s[3] = 99
						s[1] = (minY + float64(iy+1)*dy - ymid) / (nextY - ymid)
					} else {
						s[3] = (minY + float64(iy)*dy - ymid) / (nextY - ymid)
						s[1] = 99
					}
					s[0] = (minZ + float64(iz)*dz - zmid) / (nextZ - zmid)
					s[5] = (minZ + float64(iz+1)*dz - zmid) / (nextZ - zmid)
				case fz < onFaceTol || math.Abs(fz-dz) < onFaceTol: // on an x-y face
					s[2] = (minX + float64(ix)*dx - xmid) / (nextX - xmid)
					s[4] = (minX + float64(ix+1)*dx - xmid) / (nextX - xmid)
					s[3] = (minY + float64(iy)*dy - ymid) / (nextY - ymid)
					s[1] = (minY + float64(iy+1)*dy - ymid) / (nextY - ymid)
					if nextZ > thisZ {
						s[0] = 99
						s[5] = (minZ + float64(iz+1)*dz - zmid) / (nextZ - zmid)
					} else {
						s[0] = (minZ + float64(iz)*dz - zmid) / (nextZ - zmid)
						s[5] = 99
					}
				default: // interior to the voxel
					s[2] = (minX + float64(ix)*dx - xmid) / (nextX - xmid)
					s[4] = (minX + float64(ix+1)*dx - xmid) / (nextX - xmid)
					s[3] = (minY + float64(iy)*dy - ymid) / (nextY - ymid)
					s[1] = (minY + float64(iy+1)*dy - ymid) / (nextY - ymid)
					s[0] = (minZ + float64(iz)*dz - zmid) / (nextZ - zmid)
					s[5] = (minZ + float64(iz+1)*dz - zmid) / (nextZ - zmid)
				}

				mins := 99.0
				jfix := -1
				for j := 0; j < 6; j++ {
					if s[j] > 0 && s[j] <= 1+onFaceTol {
						if math.Abs(s[j]) > onFaceTol && s[j] <= mins {
							mins = s[j]
							jfix = j
						}
					}
				}
				if jfix < 0 {
					if h.BdryCol[k] == 0 {
						io.Pf("WARNING: banana walk found no exit face at trk=%d x,y,z=%f,%f,%f\n",
							k, thisX, thisY, thisZ)
						res.NumBananaAbort++
						dead = true
					}
					break
				}
				side = jfix
				switch jfix {
				case 0:
					mu = -(nextZ - thisZ) / tracklen
				case 1:
					mu = (nextY - thisY) / tracklen
				case 2:
					mu = -(nextX - thisX) / tracklen
				case 3:
					mu = -(nextY - thisY) / tracklen
				case 4:
					mu = (nextX - thisX) / tracklen
				case 5:
					mu = (nextZ - thisZ) / tracklen
				}
				xmid2 := xmid + mins*(nextX-xmid)
				ymid2 := ymid + mins*(nextY-ymid)
				zmid2 := zmid + mins*(nextZ-zmid)

				// outbound weight leaves the current voxel
				if !inRange() {
					inLayer = false
				}
				if inLayer {
					res.OutSide[side][ix][iy][iz] += discWt / muFloor(mu)
				}

				// step into the next voxel: the matching entry face is the
				// one opposite to the exit face
				switch jfix {
				case 0:
					iz--
					side = 5
				case 1:
					iy++
					side = 3
				case 2:
					ix--
					side = 4
				case 3:
					iy--
					side = 1
				case 4:
					ix++
					side = 2
				case 5:
					iz++
					side = 0
				}
				if !inRange() {
					inLayer = false
				}
				if inLayer {
					res.InSide[side][ix][iy][iz] += discWt
				}
				xmid, ymid, zmid = xmid2, ymid2, zmid2
			}
		}

		// only real collisions deweight the walk
		if h.BdryCol[k] == 0 || k == 0 {
			curr := 0
			for i := 1; i <= o.tis.NumLay; i++ {
				if thisZ >= o.tis.Layers[i].Zbegin && thisZ <= o.tis.Layers[i].Zend {
					curr = i
				}
			}
			if curr > 0 {
				lay := &o.tis.Layers[curr]
				discWt *= lay.Mus / (lay.Mus + lay.Mua)
			}
		}
	}
}
