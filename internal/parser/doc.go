// Package parser builds the syntax tree of an X program by recursive
// descent, one procedure per nonterminal:
//
//	Program    -> 'program' Block
//	Block      -> '{' Decl* Stmt* '}'
//	Decl       -> Type Name | Type Name FuncHead Block
//	Type       -> 'int' | 'boolean' | 'string' | 'scientific'
//	FuncHead   -> '(' (Decl (',' Decl)*)? ')'
//	Stmt       -> 'if' Expr 'then' Block ('else' Block)?
//	            | 'while' Expr Block
//	            | 'forall' Decl 'in' RangeExpr Block
//	            | 'return' Expr
//	            | Block
//	            | Name '=' Expr
//	RangeExpr  -> '[' IntLit '..' IntLit ']'
//	Expr       -> SimpleExpr (RelOp SimpleExpr)?
//	SimpleExpr -> Term (AddOp Term)*
//	Term       -> Factor (MulOp Factor)*
//	Factor     -> '(' Expr ')' | IntLit | StringLit | ScientificLit
//	            | Name | Name '(' (Expr (',' Expr)*)? ')'
//
// There is no error recovery: the first mismatch is returned as a
// *SyntaxError and no tree is produced.
package parser
