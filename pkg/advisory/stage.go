package advisory

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"kisan/entities"
)

// ErrUnknownCrop is returned when no duration table exists for the crop.
var ErrUnknownCrop = errors.New("advisory: unknown crop")

// stageDurations holds per-stage day counts for each crop. Defaults below are
// typical north-Indian season lengths; LoadDurationsCSV can override them.
var stageDurations = map[entities.CropType]map[entities.CropStage]int{
	entities.CropRice:    {entities.StageSowing: 20, entities.StageGrowth: 40, entities.StageFlowering: 30, entities.StageHarvest: 30},
	entities.CropWheat:   {entities.StageSowing: 20, entities.StageGrowth: 50, entities.StageFlowering: 40, entities.StageHarvest: 30},
	entities.CropCotton:  {entities.StageSowing: 25, entities.StageGrowth: 60, entities.StageFlowering: 45, entities.StageHarvest: 30},
	entities.CropMaize:   {entities.StageSowing: 15, entities.StageGrowth: 40, entities.StageFlowering: 25, entities.StageHarvest: 20},
	entities.CropMustard: {entities.StageSowing: 15, entities.StageGrowth: 40, entities.StageFlowering: 30, entities.StageHarvest: 25},
}

// ComputeStageProgress maps a sowing date to the current growth stage by
// walking the fixed stage order and accumulating durations. Past the final
// window it clamps to Harvesting at 100%.
func ComputeStageProgress(sowingDate time.Time, crop entities.CropType) (entities.StageProgress, error) {
	durations, ok := stageDurations[crop]
	if !ok {
		return entities.StageProgress{}, fmt.Errorf("%w: %q", ErrUnknownCrop, crop)
	}

	days := int(time.Since(sowingDate).Hours() / 24)
	if days < 0 {
		days = 0
	}

	accumulated := 0
	for i, stage := range entities.StageOrder {
		dur := durations[stage]
		if days < accumulated+dur {
			inCurrent := days - accumulated
			var next *entities.CropStage
			if i+1 < len(entities.StageOrder) {
				n := entities.StageOrder[i+1]
				next = &n
			}
			pct := float64(inCurrent) / float64(dur) * 100
			if pct > 100 {
				pct = 100
			}
			return entities.StageProgress{
				CurrentStage:  stage,
				Percent:       pct,
				DaysInCurrent: inCurrent,
				NextStage:     next,
				DaysToNext:    dur - inCurrent,
			}, nil
		}
		accumulated += dur
	}

	return entities.StageProgress{
		CurrentStage:  entities.StageHarvest,
		Percent:       100,
		DaysInCurrent: days - (accumulated - durations[entities.StageHarvest]),
		NextStage:     nil,
		DaysToNext:    0,
	}, nil
}

// SuggestStage is the setup-flow helper: the stage the calendar says the crop
// should be in today.
func SuggestStage(sowingDate time.Time, crop entities.CropType) (entities.CropStage, error) {
	p, err := ComputeStageProgress(sowingDate, crop)
	if err != nil {
		return "", err
	}
	return p.CurrentStage, nil
}

// LoadDurationsCSV overlays stage durations from a CSV with Crop, Stage and
// Days columns. Header names are matched loosely (case, spaces, separators).
func LoadDurationsCSV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	head, err := cr.Read()
	if err != nil {
		return err
	}

	norm := func(s string) string {
		s = strings.TrimSpace(s)
		s = strings.TrimPrefix(s, "\uFEFF") // BOM
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, "-", "")
		s = strings.ReplaceAll(s, "_", "")
		return s
	}
	hmap := map[string]int{}
	for i, h := range head {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cCrop := findAny("Crop", "crop_type", "croptype")
	cStage := findAny("Stage", "phase")
	cDays := findAny("Days", "duration", "days_in_stage", "stagedays")
	if cCrop == -1 || cStage == -1 || cDays == -1 {
		return fmt.Errorf("stage CSV missing required columns, found headers: %v", head)
	}

	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		crop, ok := entities.ParseCropType(get(cCrop))
		if !ok {
			continue
		}
		stage, ok := entities.ParseCropStage(get(cStage))
		if !ok {
			continue
		}
		days, _ := strconv.Atoi(get(cDays))
		if days <= 0 {
			continue // skip invalid rows
		}
		if _, ok := stageDurations[crop]; !ok {
			stageDurations[crop] = map[entities.CropStage]int{}
		}
		stageDurations[crop][stage] = days
	}
	return nil
}
