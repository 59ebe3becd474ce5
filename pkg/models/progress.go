package models

// UserProgress representa o documento de progresso de nível de um
// usuário na coleção "niveis". A chave primária é o ID do usuário.
type UserProgress struct {
	UserID   string `bson:"_id" json:"userId"`
	Username string `bson:"username" json:"username"`
	XP       int    `bson:"xp" json:"xp"`
	Level    int    `bson:"level" json:"level"`
	LastRole string `bson:"lastRole,omitempty" json:"lastRole,omitempty"`
}

// LevelRole associa um nível a um cargo do Discord.
// Os nomes dos campos seguem o esquema original (nivel/id).
type LevelRole struct {
	Level  int    `bson:"nivel" json:"nivel"`
	RoleID string `bson:"id" json:"id"`
}

// LevelRolesConfig é o documento de configuração nivel→cargo,
// somente leitura para o subsistema de níveis.
type LevelRolesConfig struct {
	ID     string      `bson:"_id" json:"_id"`
	Cargos []LevelRole `bson:"cargos" json:"cargos"`
}

// LevelUpHistory é um registro de auditoria gravado a cada subida de
// nível. Nenhum caminho de leitura existe no bot; consumido por
// ferramentas externas de relatório.
type LevelUpHistory struct {
	UserID    string `bson:"userId" json:"userId"`
	Username  string `bson:"username" json:"username"`
	Level     int    `bson:"level" json:"level"`
	GuildID   string `bson:"guildId" json:"guildId"`
	Timestamp int64  `bson:"timestamp" json:"timestamp"`
}
