package ahd

import (
	"runtime"
	"sync"

	"github.com/abworrall/nefraw/pkg/rawcamera"
	"github.com/abworrall/nefraw/pkg/rawimage"
)

const (
	tileBorder = 5
	tileMargin = 3
	tileHeight = 256
	tileWidth  = 256
)

// workerScratch holds one goroutine's reusable tile set, so the pool
// allocates tileHeight*tileWidth pixels per tile type once per worker
// rather than once per tile in the grid.
type workerScratch struct {
	hTile, vTile *rawimage.ImageTile[rawimage.RGBPixel]
	hLab, vLab   *rawimage.ImageTile[rawimage.LABPixel]
	homo         *rawimage.ImageTile[rawimage.HomogeneityPixel]
}

func newWorkerScratch(imageSize, tileSize rawimage.Point) *workerScratch {
	return &workerScratch{
		hTile: rawimage.NewImageTile[rawimage.RGBPixel](imageSize, tileSize, tileBorder, tileMargin),
		vTile: rawimage.NewImageTile[rawimage.RGBPixel](imageSize, tileSize, tileBorder, tileMargin),
		hLab:  rawimage.NewImageTile[rawimage.LABPixel](imageSize, tileSize, tileBorder, tileMargin),
		vLab:  rawimage.NewImageTile[rawimage.LABPixel](imageSize, tileSize, tileBorder, tileMargin),
		homo:  rawimage.NewImageTile[rawimage.HomogeneityPixel](imageSize, tileSize, tileBorder, tileMargin),
	}
}

func (s *workerScratch) run(image *rawimage.RGBImage, cameraToXyz [3][4]float64, topLeft rawimage.Point) {
	s.hTile.SetTopLeft(topLeft)
	s.vTile.SetTopLeft(topLeft)
	s.hLab.SetTopLeft(topLeft)
	s.vLab.SetTopLeft(topLeft)
	s.homo.SetTopLeft(topLeft)

	createGreenDirectionalImages(image, s.hTile, s.vTile)

	fillDirectionalImage(image, s.hTile)
	fillDirectionalImage(image, s.vTile)

	createCielabImage(s.hTile, s.hLab, cameraToXyz)
	createCielabImage(s.vTile, s.vLab, cameraToXyz)

	fillHomogeneityMap(s.hLab, s.vLab, s.homo)

	refillImage(image, s.hTile, s.vTile, s.homo)
}

// Interpolate demosaics a raw Bayer-patterned GrayImage into a full
// RGBImage using Adaptive Homogeneity-Directed interpolation, walking the
// image in fixed 256x256 tiles across a pool of worker goroutines (one
// scratch tile set per worker, reused for every tile it is handed).
func Interpolate(gray *rawimage.GrayImage, ccd rawcamera.ColorConversionData, nColors int) *rawimage.RGBImage {
	image := promoteToRGB(gray)
	interpolateBorder(image, tileBorder)

	var cameraToXyz [3][4]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < nColors && j < 4; j++ {
			cameraToXyz[i][j] = ccd.CameraToXyz[i][j]
		}
	}

	height, width := image.Height(), image.Width()
	imageSize := rawimage.Point{Row: height, Col: width}
	tileSize := rawimage.Point{Row: tileHeight, Col: tileWidth}

	left := tileBorder - tileMargin
	top := tileBorder - tileMargin
	bottom := height - tileBorder
	right := width - tileBorder

	type tileJob struct{ row, col int }
	var jobs []tileJob
	for row := top; row < bottom; row += tileHeight - 2*tileMargin {
		for col := left; col < right; col += tileWidth - 2*tileMargin {
			jobs = append(jobs, tileJob{row, col})
		}
	}
	if len(jobs) == 0 {
		return image
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(jobs) {
		workers = len(jobs)
	}

	jobCh := make(chan tileJob)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			scratch := newWorkerScratch(imageSize, tileSize)
			for j := range jobCh {
				scratch.run(image, cameraToXyz, rawimage.Point{Row: j.row, Col: j.col})
			}
		}()
	}
	for _, j := range jobs {
		jobCh <- j
	}
	close(jobCh)
	wg.Wait()

	return image
}
