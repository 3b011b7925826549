package display

import "github.com/zearom/caster/internal/models"

// Pose is a concrete visual state for an element: a translation in pixels,
// a scale factor, and an opacity.
type Pose struct {
	TranslateX float64
	TranslateY float64
	Scale      float64
	Opacity    float64
}

// PoseSet holds the three poses a phrase moves through during a rotation
// transition: where it starts before entering, where it rests while shown,
// and where it ends while leaving.
type PoseSet struct {
	Initial  Pose
	Entering Pose
	Exiting  Pose
}

// restingPose is the on-screen pose every transition settles into
var restingPose = Pose{Scale: 1, Opacity: 1}

// slideDistance is how far sliding transitions travel, in pixels
const slideDistance = 40.0

// transitionPoses maps every supported transition kind to its pose triple.
// The set is closed; unknown kinds fall back to fade.
var transitionPoses = map[models.TransitionKind]PoseSet{
	models.TransitionFade: {
		Initial:  Pose{Scale: 1, Opacity: 0},
		Entering: restingPose,
		Exiting:  Pose{Scale: 1, Opacity: 0},
	},
	models.TransitionSlideLeft: {
		Initial:  Pose{TranslateX: slideDistance, Scale: 1, Opacity: 0},
		Entering: restingPose,
		Exiting:  Pose{TranslateX: -slideDistance, Scale: 1, Opacity: 0},
	},
	models.TransitionSlideRight: {
		Initial:  Pose{TranslateX: -slideDistance, Scale: 1, Opacity: 0},
		Entering: restingPose,
		Exiting:  Pose{TranslateX: slideDistance, Scale: 1, Opacity: 0},
	},
	models.TransitionSlideUp: {
		Initial:  Pose{TranslateY: slideDistance, Scale: 1, Opacity: 0},
		Entering: restingPose,
		Exiting:  Pose{TranslateY: -slideDistance, Scale: 1, Opacity: 0},
	},
	models.TransitionSlideDown: {
		Initial:  Pose{TranslateY: -slideDistance, Scale: 1, Opacity: 0},
		Entering: restingPose,
		Exiting:  Pose{TranslateY: slideDistance, Scale: 1, Opacity: 0},
	},
	models.TransitionZoom: {
		Initial:  Pose{Scale: 0.8, Opacity: 0},
		Entering: restingPose,
		Exiting:  Pose{Scale: 1.2, Opacity: 0},
	},
}

// PosesFor returns the pose triple for a transition kind, falling back to
// fade for anything outside the closed set.
func PosesFor(kind models.TransitionKind) PoseSet {
	if poses, ok := transitionPoses[kind]; ok {
		return poses
	}
	return transitionPoses[models.TransitionFade]
}
