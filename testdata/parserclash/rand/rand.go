package rand

type Seed int64
