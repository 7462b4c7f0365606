package strava

// ActivityType is the legacy activity taxonomy. Deprecated by the API in
// favour of SportType, but still accepted on create and update.
type ActivityType string

const (
	ActivityTypeAlpineSki       ActivityType = "AlpineSki"
	ActivityTypeBackcountrySki  ActivityType = "BackcountrySki"
	ActivityTypeCanoeing        ActivityType = "Canoeing"
	ActivityTypeCrossfit        ActivityType = "Crossfit"
	ActivityTypeEBikeRide       ActivityType = "EBikeRide"
	ActivityTypeElliptical      ActivityType = "Elliptical"
	ActivityTypeGolf            ActivityType = "Golf"
	ActivityTypeHandcycle       ActivityType = "Handcycle"
	ActivityTypeHike            ActivityType = "Hike"
	ActivityTypeIceSkate        ActivityType = "IceSkate"
	ActivityTypeInlineSkate     ActivityType = "InlineSkate"
	ActivityTypeKayaking        ActivityType = "Kayaking"
	ActivityTypeKitesurf        ActivityType = "Kitesurf"
	ActivityTypeNordicSki       ActivityType = "NordicSki"
	ActivityTypeRide            ActivityType = "Ride"
	ActivityTypeRockClimbing    ActivityType = "RockClimbing"
	ActivityTypeRollerSki       ActivityType = "RollerSki"
	ActivityTypeRowing          ActivityType = "Rowing"
	ActivityTypeRun             ActivityType = "Run"
	ActivityTypeSail            ActivityType = "Sail"
	ActivityTypeSkateboard      ActivityType = "Skateboard"
	ActivityTypeSnowboard       ActivityType = "Snowboard"
	ActivityTypeSnowshoe        ActivityType = "Snowshoe"
	ActivityTypeSoccer          ActivityType = "Soccer"
	ActivityTypeStairStepper    ActivityType = "StairStepper"
	ActivityTypeStandUpPaddling ActivityType = "StandUpPaddling"
	ActivityTypeSurfing         ActivityType = "Surfing"
	ActivityTypeSwim            ActivityType = "Swim"
	ActivityTypeVelomobile      ActivityType = "Velomobile"
	ActivityTypeVirtualRide     ActivityType = "VirtualRide"
	ActivityTypeVirtualRun      ActivityType = "VirtualRun"
	ActivityTypeWalk            ActivityType = "Walk"
	ActivityTypeWeightTraining  ActivityType = "WeightTraining"
	ActivityTypeWheelchair      ActivityType = "Wheelchair"
	ActivityTypeWindsurf        ActivityType = "Windsurf"
	ActivityTypeWorkout         ActivityType = "Workout"
	ActivityTypeYoga            ActivityType = "Yoga"
)

// SportType is the current activity taxonomy.
type SportType string

const (
	SportTypeAlpineSki         SportType = "AlpineSki"
	SportTypeBackcountrySki    SportType = "BackcountrySki"
	SportTypeCanoeing          SportType = "Canoeing"
	SportTypeCrossfit          SportType = "Crossfit"
	SportTypeEBikeRide         SportType = "EBikeRide"
	SportTypeElliptical        SportType = "Elliptical"
	SportTypeEMountainBikeRide SportType = "EMountainBikeRide"
	SportTypeGolf              SportType = "Golf"
	SportTypeGravelRide        SportType = "GravelRide"
	SportTypeHandcycle         SportType = "Handcycle"
	SportTypeHike              SportType = "Hike"
	SportTypeIceSkate          SportType = "IceSkate"
	SportTypeInlineSkate       SportType = "InlineSkate"
	SportTypeKayaking          SportType = "Kayaking"
	SportTypeKitesurf          SportType = "Kitesurf"
	SportTypeMountainBikeRide  SportType = "MountainBikeRide"
	SportTypeNordicSki         SportType = "NordicSki"
	SportTypeRide              SportType = "Ride"
	SportTypeRockClimbing      SportType = "RockClimbing"
	SportTypeRollerSki         SportType = "RollerSki"
	SportTypeRowing            SportType = "Rowing"
	SportTypeRun               SportType = "Run"
	SportTypeSail              SportType = "Sail"
	SportTypeSkateboard        SportType = "Skateboard"
	SportTypeSnowboard         SportType = "Snowboard"
	SportTypeSnowshoe          SportType = "Snowshoe"
	SportTypeSoccer            SportType = "Soccer"
	SportTypeStairStepper      SportType = "StairStepper"
	SportTypeStandUpPaddling   SportType = "StandUpPaddling"
	SportTypeSurfing           SportType = "Surfing"
	SportTypeSwim              SportType = "Swim"
	SportTypeTrailRun          SportType = "TrailRun"
	SportTypeVelomobile        SportType = "Velomobile"
	SportTypeVirtualRide       SportType = "VirtualRide"
	SportTypeVirtualRun        SportType = "VirtualRun"
	SportTypeWalk              SportType = "Walk"
	SportTypeWeightTraining    SportType = "WeightTraining"
	SportTypeWheelchair        SportType = "Wheelchair"
	SportTypeWindsurf          SportType = "Windsurf"
	SportTypeWorkout           SportType = "Workout"
	SportTypeYoga              SportType = "Yoga"
)
