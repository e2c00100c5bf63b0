package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// SetNode 多实例部署时按实例设置节点号, 范围 0-1023
func SetNode(id int64) error {
	n, err := snowflake.NewNode(id)
	if err != nil {
		return err
	}
	node = n
	return nil
}

// GenActionID 一次投票动作的流水批次号
func GenActionID() int64 {
	return node.Generate().Int64()
}
